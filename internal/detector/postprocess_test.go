package detector

import (
	"testing"

	"github.com/your-org/goocr/internal/geometry"
)

func TestProjectToOriginalScalesByRatio(t *testing.T) {
	box := geometry.Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := projectToOriginal(box, 2, 2, 2)
	// fx = fy = 2/2 = 1, so coordinates pass through unchanged.
	if out != box {
		t.Fatalf("expected identity projection when scale/ratio cancel, got %+v", out)
	}

	out = projectToOriginal(box, 1, 1, 2)
	// fx = fy = 1/2 = 0.5, so coordinates double.
	if out[2].X != 20 || out[2].Y != 20 {
		t.Fatalf("expected coordinates doubled, got %+v", out[2])
	}
}

func TestPostprocessFindsOneBoxForBlockyHighConfidenceRegion(t *testing.T) {
	const w, h = 20, 20
	text := make([]float32, w*h)
	link := make([]float32, w*h)
	// A solid 6x6 high-confidence block away from the border.
	for y := 5; y < 11; y++ {
		for x := 5; x < 11; x++ {
			text[y*w+x] = 0.95
		}
	}
	opts := Options{TextThreshold: 0.7, LowText: 0.4, LinkThreshold: 0.4}
	boxes := Postprocess(Heatmap{Data: text, Width: w, Height: h}, Heatmap{Data: link, Width: w, Height: h}, opts, 1, 1, 1)
	if len(boxes) != 1 {
		t.Fatalf("expected exactly one detected box, got %d", len(boxes))
	}
}

func TestPostprocessRejectsLowConfidenceRegion(t *testing.T) {
	const w, h = 20, 20
	text := make([]float32, w*h)
	link := make([]float32, w*h)
	for y := 5; y < 11; y++ {
		for x := 5; x < 11; x++ {
			text[y*w+x] = 0.5 // above lowText but below textThreshold
		}
	}
	opts := Options{TextThreshold: 0.7, LowText: 0.4, LinkThreshold: 0.4}
	boxes := Postprocess(Heatmap{Data: text, Width: w, Height: h}, Heatmap{Data: link, Width: w, Height: h}, opts, 1, 1, 1)
	if len(boxes) != 0 {
		t.Fatalf("expected no boxes below text threshold, got %d", len(boxes))
	}
}

func TestPostprocessRejectsTinyComponent(t *testing.T) {
	const w, h = 20, 20
	text := make([]float32, w*h)
	link := make([]float32, w*h)
	// A single high-confidence pixel: area 1 < the area-10 floor.
	text[10*w+10] = 0.99
	opts := Options{TextThreshold: 0.7, LowText: 0.4, LinkThreshold: 0.4}
	boxes := Postprocess(Heatmap{Data: text, Width: w, Height: h}, Heatmap{Data: link, Width: w, Height: h}, opts, 1, 1, 1)
	if len(boxes) != 0 {
		t.Fatalf("expected tiny component filtered out, got %d", len(boxes))
	}
}
