// Package recognizer wraps the CRNN-style recognition ONNX session: grayscale
// conversion, two-stage aspect-preserving resample, normalization,
// replicate-padding to a fixed batch width, and greedy CTC decoding.
package recognizer

import (
	"math"

	"github.com/your-org/goocr/internal/imaging"
)

// PreprocessResult carries the padded [1,H,maxWidth] float plane fed to the
// recognizer session.
type PreprocessResult struct {
	Data     []float32
	Height   int
	MaxWidth int
	// ResizedWidth is the width before replicate-padding (stage-2 output),
	// useful for trace diffing against the reference.
	ResizedWidth int
}

// Preprocess implements spec §4.F end-to-end.
func Preprocess(img *imaging.RasterImage, targetH int, mean, std float64) PreprocessResult {
	gray := imaging.ToGray8(img)

	ratio := float64(gray.Width) / float64(gray.Height)
	if ratio < 1 {
		ratio = 1 / ratio
	}

	// Both branches of the reference's original-ratio check compute the
	// same (W,H) pair once ratio has been inverted to >= 1; only the tuple
	// order in the source differs.
	stage1H := targetH
	stage1W := int(math.Trunc(float64(targetH) * ratio))
	if stage1W < 1 {
		stage1W = 1
	}
	stage1 := imaging.ResizeBilinear(gray, stage1W, stage1H)

	stage1Ratio := float64(stage1.Width) / float64(stage1.Height)
	maxWidth := int(math.Ceil(ratio)) * targetH
	resizedW := int(math.Ceil(float64(targetH) * stage1Ratio))
	if resizedW > maxWidth {
		resizedW = maxWidth
	}
	if resizedW < 1 {
		resizedW = 1
	}

	stage2 := imaging.ResizeBicubic(stage1, resizedW, targetH)

	normalized := imaging.NormalizeGrayToCHW(stage2, mean, std)
	padded := imaging.ReplicatePadWidth(normalized, 1, targetH, resizedW, maxWidth)

	return PreprocessResult{
		Data:         padded,
		Height:       targetH,
		MaxWidth:     maxWidth,
		ResizedWidth: resizedW,
	}
}
