// Package ocr implements the orchestrator: option resolution, ignore-index
// synthesis, the detector->group->crop->recognizer->decode chain, optional
// line merging, and final result ordering.
package ocr

// RecognizerOptions is the nested recognizer-geometry sub-record of Options,
// merged field-wise against its defaults independently of the outer record.
type RecognizerOptions struct {
	InputHeight   int
	InputWidth    int
	InputChannels int
	Mean          float64
	Std           float64
}

// Options is the flat, immutable-after-resolution configuration record
// accepted by a pipeline call (spec §3). Overrides are merged field-wise
// against DefaultOptions; there is no prototype-chain inheritance.
type Options struct {
	CanvasSize int
	MagRatio   float64
	Align      int
	Mean       [3]float64
	Std        [3]float64

	TextThreshold float64
	LowText       float64
	LinkThreshold float64
	MinSize       float64

	SlopeThs   float64
	YCenterThs float64
	HeightThs  float64
	WidthThs   float64
	AddMargin  float64

	RotationInfo []int

	Recognizer RecognizerOptions

	LangList  []string
	Allowlist string
	Blocklist string

	MergeLines  bool
	XThs        float64
	YThs        float64
	MaxAngleDeg float64
}

// DefaultOptions returns the documented default values from spec §3.
func DefaultOptions() Options {
	return Options{
		CanvasSize: 2560,
		MagRatio:   1.0,
		Align:      32,
		Mean:       [3]float64{0.485, 0.456, 0.406},
		Std:        [3]float64{0.229, 0.224, 0.225},

		TextThreshold: 0.7,
		LowText:       0.4,
		LinkThreshold: 0.4,
		MinSize:       20,

		SlopeThs:   0.1,
		YCenterThs: 0.5,
		HeightThs:  0.5,
		WidthThs:   0.5,
		AddMargin:  0.1,

		Recognizer: RecognizerOptions{
			InputHeight:   64,
			InputWidth:    100,
			InputChannels: 1,
			Mean:          0.5,
			Std:           0.5,
		},

		MergeLines:  false,
		XThs:        1.0,
		YThs:        0.5,
		MaxAngleDeg: 10,
	}
}

// Merge field-wise overlays non-zero-value fields of o onto a copy of
// DefaultOptions, including the nested Recognizer sub-record. Zero values in
// o are treated as "not overridden" — callers who genuinely want threshold
// zero must go through a pointer-based override in a future revision; this
// matches the reference's closure-style per-call option merge for the
// common case of partial overrides.
func Merge(overrides Options) Options {
	base := DefaultOptions()

	if overrides.CanvasSize != 0 {
		base.CanvasSize = overrides.CanvasSize
	}
	if overrides.MagRatio != 0 {
		base.MagRatio = overrides.MagRatio
	}
	if overrides.Align != 0 {
		base.Align = overrides.Align
	}
	if overrides.Mean != ([3]float64{}) {
		base.Mean = overrides.Mean
	}
	if overrides.Std != ([3]float64{}) {
		base.Std = overrides.Std
	}
	if overrides.TextThreshold != 0 {
		base.TextThreshold = overrides.TextThreshold
	}
	if overrides.LowText != 0 {
		base.LowText = overrides.LowText
	}
	if overrides.LinkThreshold != 0 {
		base.LinkThreshold = overrides.LinkThreshold
	}
	if overrides.MinSize != 0 {
		base.MinSize = overrides.MinSize
	}
	if overrides.SlopeThs != 0 {
		base.SlopeThs = overrides.SlopeThs
	}
	if overrides.YCenterThs != 0 {
		base.YCenterThs = overrides.YCenterThs
	}
	if overrides.HeightThs != 0 {
		base.HeightThs = overrides.HeightThs
	}
	if overrides.WidthThs != 0 {
		base.WidthThs = overrides.WidthThs
	}
	if overrides.AddMargin != 0 {
		base.AddMargin = overrides.AddMargin
	}
	if len(overrides.RotationInfo) != 0 {
		base.RotationInfo = overrides.RotationInfo
	}

	if overrides.Recognizer.InputHeight != 0 {
		base.Recognizer.InputHeight = overrides.Recognizer.InputHeight
	}
	if overrides.Recognizer.InputWidth != 0 {
		base.Recognizer.InputWidth = overrides.Recognizer.InputWidth
	}
	if overrides.Recognizer.InputChannels != 0 {
		base.Recognizer.InputChannels = overrides.Recognizer.InputChannels
	}
	if overrides.Recognizer.Mean != 0 {
		base.Recognizer.Mean = overrides.Recognizer.Mean
	}
	if overrides.Recognizer.Std != 0 {
		base.Recognizer.Std = overrides.Recognizer.Std
	}

	if len(overrides.LangList) != 0 {
		base.LangList = overrides.LangList
	}
	if overrides.Allowlist != "" {
		base.Allowlist = overrides.Allowlist
	}
	if overrides.Blocklist != "" {
		base.Blocklist = overrides.Blocklist
	}

	base.MergeLines = overrides.MergeLines
	if overrides.XThs != 0 {
		base.XThs = overrides.XThs
	}
	if overrides.YThs != 0 {
		base.YThs = overrides.YThs
	}
	if overrides.MaxAngleDeg != 0 {
		base.MaxAngleDeg = overrides.MaxAngleDeg
	}

	return base
}
