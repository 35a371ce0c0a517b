// Package detector wraps the CRAFT-style text-detection ONNX session: input
// preprocessing (aspect-preserving resize, stride padding, normalization)
// and output postprocessing (heatmap thresholding, connected components,
// adaptive dilation, minimum-area rectangle extraction).
package detector

import (
	"github.com/your-org/goocr/internal/imaging"
)

// ImageNet normalization constants used by the detector, per its training
// recipe — not configurable via Options beyond overriding mean/std.
var (
	DefaultMean = [3]float64{0.485, 0.456, 0.406}
	DefaultStd  = [3]float64{0.229, 0.224, 0.225}
)

// PreprocessResult carries the padded NCHW tensor data plus everything
// needed to back-project detector-space coordinates to the original image.
type PreprocessResult struct {
	CHW       []float32
	Width     int // padded width fed to the model
	Height    int // padded height fed to the model
	ScaleX    float64
	ScaleY    float64
	ResizedW  int // width after aspect-preserving resize, before padding
	ResizedH  int
}

// Preprocess implements spec §4.B: resize long side to
// min(canvasSize, max(W,H)*magRatio), pad to a multiple of align, normalize
// with ImageNet mean/std, and pack to NCHW.
func Preprocess(img *imaging.RasterImage, canvasSize int, magRatio float64, align int, mean, std [3]float64) PreprocessResult {
	longSide := img.Width
	if img.Height > longSide {
		longSide = img.Height
	}
	target := float64(canvasSize)
	if magTarget := float64(longSide) * magRatio; magTarget < target {
		target = magTarget
	}

	resized, scaleX, scaleY := imaging.ResizeLongSide(img, int(target))
	padded := imaging.PadToStride(resized, align)

	chw := imaging.NormalizeToCHW(padded, mean, std)

	return PreprocessResult{
		CHW:      chw,
		Width:    padded.Width,
		Height:   padded.Height,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		ResizedW: resized.Width,
		ResizedH: resized.Height,
	}
}
