package ocr

import (
	"fmt"
	"sort"

	"github.com/your-org/goocr/internal/detector"
	"github.com/your-org/goocr/internal/geometry"
	"github.com/your-org/goocr/internal/imaging"
	"github.com/your-org/goocr/internal/recognizer"
)

// Result is one final OCR hit: a clockwise-ordered polygon, its decoded
// text, and the CTC geometric-mean confidence (spec §2 data model).
type Result struct {
	Polygon    geometry.Polygon
	Text       string
	Confidence float64
}

// Engine owns the two ONNX sessions and the fixed charset they were trained
// against. It has no mutable state beyond the sessions themselves, so a
// single Engine can serve concurrent Run calls.
type Engine struct {
	Detector   *detector.Session
	Recognizer *recognizer.Session
	Charset    []rune
	Blank      int
}

// NewEngine binds a loaded detector and recognizer session to a charset. The
// CTC blank index follows the spec §4.G convention (blank=0) unless
// overridden.
func NewEngine(det *detector.Session, rec *recognizer.Session, charset []rune) *Engine {
	return &Engine{Detector: det, Recognizer: rec, Charset: charset, Blank: 0}
}

// Run executes the full detector -> postprocess -> group -> crop ->
// recognizer -> decode -> (optional merge) -> sort pipeline (spec §4-§5).
// Errors propagate fail-fast: a stage error aborts the call rather than
// returning partial results (spec §7).
func (e *Engine) Run(img *imaging.RasterImage, overrides Options, tw TraceWriter) ([]Result, error) {
	emit(tw, TraceLoadImage, img)

	opts := Merge(overrides)
	emit(tw, TraceOCROptions, opts)

	for _, lang := range opts.LangList {
		if _, ok := languageCharsets[lang]; !ok {
			return nil, fmt.Errorf("%w: unknown language code %q", ErrUnsupportedConfig, lang)
		}
	}

	if e.Recognizer != nil {
		if dh := e.Recognizer.DeclaredHeight(); dh != 0 && dh != opts.Recognizer.InputHeight {
			return nil, fmt.Errorf("%w: recognizer model declares input height %d, options request %d",
				ErrUnsupportedConfig, dh, opts.Recognizer.InputHeight)
		}
	}

	pre := detector.Preprocess(img, opts.CanvasSize, opts.MagRatio, opts.Align, opts.Mean, opts.Std)
	emit(tw, TraceResizeAspectRatio, [2]int{pre.ResizedW, pre.ResizedH})
	emit(tw, TracePadToStride, [2]int{pre.Width, pre.Height})
	emit(tw, TraceNormalizeMeanVariance, pre.CHW)
	emit(tw, TraceToTensorLayout, [2]int{pre.Width, pre.Height})
	emit(tw, TraceDetectorInputFinal, pre.CHW)

	text, link, err := e.Detector.Run(pre.CHW, pre.Width, pre.Height)
	if err != nil {
		return nil, err
	}
	emit(tw, TraceDetectorRawOutputText, text)
	emit(tw, TraceDetectorRawOutputLink, link)
	emit(tw, TraceHeatmapText, text)
	emit(tw, TraceHeatmapLink, link)

	ratio := detector.HeatmapRatio(pre.Width, pre.Height, text.Width, text.Height)

	boxes := detector.Postprocess(text, link, detector.Options{
		TextThreshold: opts.TextThreshold,
		LowText:       opts.LowText,
		LinkThreshold: opts.LinkThreshold,
	}, pre.ScaleX, pre.ScaleY, ratio)
	emit(tw, TraceThresholdAndBoxDecode, boxes)
	emit(tw, TraceAdjustCoordinates, boxes)

	polys, numHorizontal := GroupBoxes(boxes, opts.SlopeThs, opts.YCenterThs, opts.HeightThs, opts.WidthThs, opts.AddMargin, opts.MinSize)
	emit(tw, TraceDetectorBoxesHorizontal, polys[:numHorizontal])
	emit(tw, TraceDetectorBoxesFree, polys[numHorizontal:])
	emit(tw, TraceDetectorBoxesOrdered, polys)

	ignoreRunes := SynthesizeIgnoreSet(e.Charset, opts.Allowlist, opts.Blocklist, opts.LangList)
	ignoreIdx := IgnoreIndices(e.Charset, ignoreRunes, e.Blank)

	crops := BuildCrops(img, polys, opts.RotationInfo)

	var recognized []Recognized
	for _, c := range crops {
		rpre := recognizer.Preprocess(c.Image, opts.Recognizer.InputHeight, opts.Recognizer.Mean, opts.Recognizer.Std)
		logits, steps, classes, err := e.Recognizer.Run(rpre.Data, rpre.Height, rpre.MaxWidth)
		if err != nil {
			return nil, err
		}
		decoded := recognizer.GreedyDecode(logits, steps, classes, e.Charset, e.Blank, ignoreIdx)
		if decoded.Text == "" {
			continue
		}
		recognized = append(recognized, Recognized{
			Polygon:    c.Source,
			Rotation:   c.Rotation,
			Text:       decoded.Text,
			Confidence: decoded.Confidence,
		})
	}
	emit(tw, TraceRecognizerPreMerge, recognized)

	if opts.MergeLines {
		recognized = MergeLines(recognized, opts.YThs, opts.XThs, opts.MaxAngleDeg)
	}
	emit(tw, TraceRecognizerPostMerge, recognized)

	results := make([]Result, len(recognized))
	for i, r := range recognized {
		results[i] = Result{Polygon: r.Polygon, Text: r.Text, Confidence: r.Confidence}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Polygon, results[j].Polygon
		if a.MinY() != b.MinY() {
			return a.MinY() < b.MinY()
		}
		return a.MinX() < b.MinX()
	})

	return results, nil
}
