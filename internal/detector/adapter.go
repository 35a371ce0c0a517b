package detector

import (
	"fmt"

	"github.com/your-org/goocr/internal/ocrerr"
	"github.com/your-org/goocr/internal/tensor"
)

// OutputShape tags the three detector output conventions the inference
// runner may hand back. The core normalizes all three to a canonical
// (text, link) heatmap pair and rejects anything else explicitly.
type OutputShape int

const (
	ShapeUnknown OutputShape = iota
	ShapeChannelsLast         // [1, H/2, W/2, 2]
	ShapeChannelsFirst        // [1, 2, H/2, W/2]
	ShapeNamedPair            // separate "text" / "link" tensors
)

// NormalizeOutputs inspects the raw ONNX session outputs and extracts the
// canonical (text, link) heatmap pair, regardless of which of the three
// supported layouts the model used.
func NormalizeOutputs(outputs map[string]*tensor.Tensor) (text, link Heatmap, err error) {
	if t, okT := outputs["text"]; okT {
		if l, okL := outputs["link"]; okL {
			return toHeatmap(t), toHeatmap(l), nil
		}
	}

	// Fall back to a single combined tensor under any name (the teacher's
	// session wrappers use a single primary output key too).
	var combined *tensor.Tensor
	for _, v := range outputs {
		if len(v.Shape) == 4 {
			combined = v
			break
		}
	}
	if combined == nil {
		return Heatmap{}, Heatmap{}, fmt.Errorf("%w: detector produced no 4-D output tensor", ocrerr.ErrShapeMismatch)
	}

	shape := combined.Shape
	switch {
	case shape[3] == 2:
		// channels-last: [1, H, W, 2]
		h, w := shape[1], shape[2]
		return splitChannelsLast(combined.F32Data, h, w)
	case shape[1] == 2:
		// channels-first: [1, 2, H, W]
		h, w := shape[2], shape[3]
		return splitChannelsFirst(combined.F32Data, h, w)
	default:
		return Heatmap{}, Heatmap{}, fmt.Errorf("%w: detector output shape %v has no 2-channel axis", ocrerr.ErrShapeMismatch, shape)
	}
}

func toHeatmap(t *tensor.Tensor) Heatmap {
	h, w := t.Shape[len(t.Shape)-2], t.Shape[len(t.Shape)-1]
	return Heatmap{Data: t.F32Data, Width: w, Height: h}
}

func splitChannelsLast(data []float32, h, w int) (text, link Heatmap, err error) {
	tData := make([]float32, h*w)
	lData := make([]float32, h*w)
	for i := 0; i < h*w; i++ {
		tData[i] = data[i*2+0]
		lData[i] = data[i*2+1]
	}
	return Heatmap{Data: tData, Width: w, Height: h}, Heatmap{Data: lData, Width: w, Height: h}, nil
}

func splitChannelsFirst(data []float32, h, w int) (text, link Heatmap, err error) {
	plane := h * w
	tData := make([]float32, plane)
	lData := make([]float32, plane)
	copy(tData, data[0:plane])
	copy(lData, data[plane:2*plane])
	return Heatmap{Data: tData, Width: w, Height: h}, Heatmap{Data: lData, Width: w, Height: h}, nil
}
