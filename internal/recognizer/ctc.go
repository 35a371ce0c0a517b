package recognizer

import "math"

// DecodeResult is the output of greedy CTC decoding: the collapsed text and
// its geometric-mean confidence.
type DecodeResult struct {
	Text       string
	Confidence float64
}

// GreedyDecode implements spec §4.G: per-step argmax over non-ignored
// classes, duplicate/blank collapse, and geometric-mean confidence.
// logits has shape [steps, classes]; blank is the blank class index
// (convention 0); ignoreSet holds class indices to mask out entirely.
func GreedyDecode(logits []float32, steps, classes int, charset []rune, blank int, ignoreSet map[int]bool) DecodeResult {
	var sb []rune
	var keptProbs []float64
	prevIndex := -1

	for t := 0; t < steps; t++ {
		row := logits[t*classes : (t+1)*classes]

		bestIndex := -1
		var bestVal float32
		for c := 0; c < classes; c++ {
			if ignoreSet[c] {
				continue
			}
			if bestIndex == -1 || row[c] > bestVal {
				bestIndex = c
				bestVal = row[c]
			}
		}
		if bestIndex == -1 {
			continue
		}

		// numerically stable softmax restricted to non-ignored classes
		var denom float64
		for c := 0; c < classes; c++ {
			if ignoreSet[c] {
				continue
			}
			denom += math.Exp(float64(row[c] - bestVal))
		}
		p := 1.0
		if denom != 0 {
			p = 1.0 / denom
		}

		if bestIndex != blank && !ignoreSet[bestIndex] {
			keptProbs = append(keptProbs, p)
		}

		if bestIndex != blank && bestIndex != prevIndex && !ignoreSet[bestIndex] {
			sb = append(sb, charAt(charset, bestIndex, blank))
		}

		prevIndex = bestIndex
	}

	text := string(sb)
	confidence := geometricMeanConfidence(keptProbs)
	if text == "" {
		confidence = 0
	}

	return DecodeResult{Text: text, Confidence: confidence}
}

// charAt maps a class index to its charset rune per the blank-offset
// convention of spec §4.G.
func charAt(charset []rune, classIdx, blank int) rune {
	if classIdx < blank {
		return charset[classIdx]
	}
	return charset[classIdx-1]
}

// geometricMeanConfidence computes exp(sum(ln(p_i)) * 2/sqrt(n)). Any
// non-positive probability, or an empty list, yields confidence 0.
func geometricMeanConfidence(probs []float64) float64 {
	n := len(probs)
	if n == 0 {
		return 0
	}
	var sumLog float64
	for _, p := range probs {
		if p <= 0 {
			return 0
		}
		sumLog += math.Log(p)
	}
	return math.Exp(sumLog * 2 / math.Sqrt(float64(n)))
}
