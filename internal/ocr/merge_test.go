package ocr

import (
	"math"
	"testing"

	"github.com/your-org/goocr/internal/geometry"
)

func recognizedAt(x0, y0, x1, y1 float64, rotation int, text string, conf float64) Recognized {
	return Recognized{
		Polygon:    geometry.AxisAligned(x0, y0, x1, y1),
		Rotation:   rotation,
		Text:       text,
		Confidence: conf,
	}
}

// recognizedTilted builds a rectangle of width w, height h, whose top edge
// (p0->p1) is tilted tiltDeg off horizontal, anchored at (x0,y0).
func recognizedTilted(x0, y0, w, h, tiltDeg float64, rotation int, text string, conf float64) Recognized {
	rad := tiltDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	p0 := geometry.Point{X: x0, Y: y0}
	p1 := geometry.Point{X: x0 + w*cos, Y: y0 + w*sin}
	p2 := geometry.Point{X: p1.X - h*sin, Y: p1.Y + h*cos}
	p3 := geometry.Point{X: p0.X - h*sin, Y: p0.Y + h*cos}
	return Recognized{
		Polygon:    geometry.Polygon{p0, p1, p2, p3},
		Rotation:   rotation,
		Text:       text,
		Confidence: conf,
	}
}

func TestMergeLinesJoinsAdjacentSameLineEntries(t *testing.T) {
	results := []Recognized{
		recognizedAt(0, 0, 20, 10, 0, "hello", 0.9),
		recognizedAt(22, 1, 40, 11, 0, "world", 0.8),
	}
	merged := MergeLines(results, 0.5, 1.0, 10)
	if len(merged) != 1 {
		t.Fatalf("expected one merged line, got %d", len(merged))
	}
	if merged[0].Text != "hello world" {
		t.Fatalf("expected joined text 'hello world', got %q", merged[0].Text)
	}
	if merged[0].Confidence != 0.8 {
		t.Fatalf("expected min confidence 0.8, got %v", merged[0].Confidence)
	}
}

func TestMergeLinesKeepsDistantEntriesSeparate(t *testing.T) {
	results := []Recognized{
		recognizedAt(0, 0, 20, 10, 0, "a", 0.9),
		recognizedAt(500, 0, 520, 10, 0, "b", 0.9),
	}
	merged := MergeLines(results, 0.5, 1.0, 10)
	if len(merged) != 2 {
		t.Fatalf("expected two separate entries, got %d", len(merged))
	}
}

func TestMergeLinesNeverMergesAcrossRotationTags(t *testing.T) {
	results := []Recognized{
		recognizedAt(0, 0, 20, 10, 0, "a", 0.9),
		recognizedAt(22, 1, 40, 11, 90, "b", 0.9),
	}
	merged := MergeLines(results, 0.5, 1.0, 10)
	if len(merged) != 2 {
		t.Fatalf("expected rotation groups kept distinct, got %d", len(merged))
	}
}

func TestMergeLinesSingleEntryPassesThroughUnchanged(t *testing.T) {
	r := recognizedAt(0, 0, 10, 10, 0, "solo", 0.5)
	merged := MergeLines([]Recognized{r}, 0.5, 1.0, 10)
	if len(merged) != 1 || merged[0] != r {
		t.Fatalf("expected single entry passed through unchanged, got %+v", merged)
	}
}

func TestMergeLinesBothUnderMaxAngleMerge(t *testing.T) {
	results := []Recognized{
		recognizedTilted(0, 0, 20, 10, 9.9, 0, "a", 0.9),
		recognizedTilted(22, 0, 20, 10, 9.9, 0, "b", 0.8),
	}
	merged := MergeLines(results, 0.5, 1.0, 10)
	if len(merged) != 1 {
		t.Fatalf("expected two 9.9-degree boxes to merge, got %d entries", len(merged))
	}
}

func TestMergeLinesOverMaxAngleNeverMerges(t *testing.T) {
	results := []Recognized{
		recognizedTilted(0, 0, 20, 10, 9.9, 0, "a", 0.9),
		recognizedTilted(22, 0, 20, 10, 10.1, 0, "b", 0.8),
	}
	merged := MergeLines(results, 0.5, 1.0, 10)
	if len(merged) != 2 {
		t.Fatalf("expected the 10.1-degree box to stay standalone, got %d entries", len(merged))
	}
}
