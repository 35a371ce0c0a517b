package detector

import (
	"testing"

	"github.com/your-org/goocr/internal/imaging"
)

func TestPreprocessResizesToMagRatioWhenSmallerThanCanvas(t *testing.T) {
	data := make([]byte, 200*100*3)
	img, err := imaging.NewRasterImage(data, 200, 100, imaging.RGB)
	if err != nil {
		t.Fatal(err)
	}
	result := Preprocess(img, 2560, 1.0, 32, DefaultMean, DefaultStd)
	if result.ResizedW != 200 || result.ResizedH != 100 {
		t.Fatalf("expected no resize needed when mag target < canvas, got %dx%d", result.ResizedW, result.ResizedH)
	}
	// Padded to a multiple of align=32.
	if result.Width%32 != 0 || result.Height%32 != 0 {
		t.Fatalf("expected padded dims aligned to 32, got %dx%d", result.Width, result.Height)
	}
}

func TestPreprocessClampsToCanvasSize(t *testing.T) {
	data := make([]byte, 5000*100*3)
	img, err := imaging.NewRasterImage(data, 5000, 100, imaging.RGB)
	if err != nil {
		t.Fatal(err)
	}
	result := Preprocess(img, 1280, 1.0, 32, DefaultMean, DefaultStd)
	if result.ResizedW != 1280 {
		t.Fatalf("expected long side clamped to canvas size 1280, got %d", result.ResizedW)
	}
}

func TestPreprocessCHWLengthMatchesPaddedDims(t *testing.T) {
	data := make([]byte, 40*40*3)
	img, err := imaging.NewRasterImage(data, 40, 40, imaging.RGB)
	if err != nil {
		t.Fatal(err)
	}
	result := Preprocess(img, 2560, 1.0, 32, DefaultMean, DefaultStd)
	want := 3 * result.Width * result.Height
	if len(result.CHW) != want {
		t.Fatalf("expected CHW length %d, got %d", want, len(result.CHW))
	}
}
