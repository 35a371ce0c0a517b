package detector

import (
	"errors"
	"testing"

	"github.com/your-org/goocr/internal/ocrerr"
	"github.com/your-org/goocr/internal/tensor"
)

func TestNormalizeOutputsNamedPair(t *testing.T) {
	textT, _ := tensor.NewF32([]int{1, 2, 2}, []float32{1, 2, 3, 4})
	linkT, _ := tensor.NewF32([]int{1, 2, 2}, []float32{5, 6, 7, 8})

	text, link, err := NormalizeOutputs(map[string]*tensor.Tensor{"text": textT, "link": linkT})
	if err != nil {
		t.Fatal(err)
	}
	if text.Width != 2 || text.Height != 2 {
		t.Fatalf("unexpected text heatmap shape: %dx%d", text.Width, text.Height)
	}
	if text.At(1, 1) != 4 {
		t.Fatalf("expected text[1,1]=4, got %v", text.At(1, 1))
	}
	if link.At(0, 0) != 5 {
		t.Fatalf("expected link[0,0]=5, got %v", link.At(0, 0))
	}
}

func TestNormalizeOutputsChannelsLast(t *testing.T) {
	// [1, H=2, W=2, 2] interleaved text/link per pixel.
	data := []float32{
		1, 10, 2, 20, // row 0: (text,link) pairs
		3, 30, 4, 40, // row 1
	}
	combined, _ := tensor.NewF32([]int{1, 2, 2, 2}, data)

	text, link, err := NormalizeOutputs(map[string]*tensor.Tensor{"output": combined})
	if err != nil {
		t.Fatal(err)
	}
	if text.At(0, 0) != 1 || text.At(1, 0) != 2 || text.At(0, 1) != 3 || text.At(1, 1) != 4 {
		t.Fatalf("channels-last text split mismatch: %+v", text)
	}
	if link.At(0, 0) != 10 || link.At(1, 1) != 40 {
		t.Fatalf("channels-last link split mismatch: %+v", link)
	}
}

func TestNormalizeOutputsChannelsFirst(t *testing.T) {
	// [1, 2, H=2, W=3]: text plane then link plane. W is not 2, so the
	// shape cannot be read as channels-last.
	data := []float32{1, 2, 3, 4, 5, 6, 10, 20, 30, 40, 50, 60}
	combined, _ := tensor.NewF32([]int{1, 2, 2, 3}, data)

	text, link, err := NormalizeOutputs(map[string]*tensor.Tensor{"output": combined})
	if err != nil {
		t.Fatal(err)
	}
	if text.At(0, 0) != 1 || text.At(2, 1) != 6 {
		t.Fatalf("channels-first text split mismatch: %+v", text)
	}
	if link.At(0, 0) != 10 || link.At(2, 1) != 60 {
		t.Fatalf("channels-first link split mismatch: %+v", link)
	}
}

func TestNormalizeOutputsRejectsUnknownShape(t *testing.T) {
	// Neither axis 1 nor axis 3 is 2, so no supported layout matches.
	combined, _ := tensor.NewF32([]int{1, 3, 3, 3}, make([]float32, 27))
	_, _, err := NormalizeOutputs(map[string]*tensor.Tensor{"output": combined})
	if !errors.Is(err, ocrerr.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestHeatmapRatioDerivesFromShape(t *testing.T) {
	if r := HeatmapRatio(640, 480, 320, 240); r != 2 {
		t.Fatalf("expected ratio 2, got %v", r)
	}
	if r := HeatmapRatio(640, 480, 160, 120); r != 4 {
		t.Fatalf("expected ratio 4, got %v", r)
	}
}

func TestHeatmapRatioFallsBackOnInconsistency(t *testing.T) {
	if r := HeatmapRatio(640, 480, 320, 100); r != 2 {
		t.Fatalf("expected fallback ratio 2 for inconsistent axes, got %v", r)
	}
	if r := HeatmapRatio(640, 480, 0, 240); r != 2 {
		t.Fatalf("expected fallback ratio 2 for zero heatmap dim, got %v", r)
	}
}
