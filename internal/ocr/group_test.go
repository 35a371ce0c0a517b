package ocr

import (
	"testing"

	"github.com/your-org/goocr/internal/detector"
	"github.com/your-org/goocr/internal/geometry"
)

func horizontalBox(x0, y0, x1, y1 float64) detector.Box {
	p := geometry.Polygon{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	return detector.Box{Heatmap: p, Adjusted: p}
}

func TestGroupBoxesMergesAdjacentHorizontalBoxesOnSameLine(t *testing.T) {
	boxes := []detector.Box{
		horizontalBox(0, 0, 20, 20),
		horizontalBox(22, 0, 42, 20), // small gap, same line -> should merge
	}
	polys, numHorizontal := GroupBoxes(boxes, 0.1, 0.5, 0.5, 0.5, 0, 1)
	if numHorizontal != 1 {
		t.Fatalf("expected the two adjacent boxes to merge into one cluster, got %d", numHorizontal)
	}
	if len(polys) != 1 {
		t.Fatalf("expected a single merged polygon, got %d", len(polys))
	}
	if polys[0].MinX() != 0 || polys[0].MaxX() != 42 {
		t.Fatalf("expected merged span [0,42], got [%v,%v]", polys[0].MinX(), polys[0].MaxX())
	}
}

func TestGroupBoxesKeepsDistantBoxesSeparate(t *testing.T) {
	boxes := []detector.Box{
		horizontalBox(0, 0, 20, 20),
		horizontalBox(500, 0, 520, 20), // far apart -> distinct clusters
	}
	polys, numHorizontal := GroupBoxes(boxes, 0.1, 0.5, 0.5, 0.5, 0, 1)
	if numHorizontal != 2 || len(polys) != 2 {
		t.Fatalf("expected two distinct clusters, got numHorizontal=%d len=%d", numHorizontal, len(polys))
	}
}

func TestGroupBoxesFiltersBelowMinSize(t *testing.T) {
	boxes := []detector.Box{horizontalBox(0, 0, 5, 5)}
	polys, _ := GroupBoxes(boxes, 0.1, 0.5, 0.5, 0.5, 0, 100)
	if len(polys) != 0 {
		t.Fatalf("expected tiny box filtered out by minSize, got %d polys", len(polys))
	}
}

func TestGroupBoxesClassifiesSteepSlopeAsFreeForm(t *testing.T) {
	// A strongly slanted quad should bypass the horizontal line-merge path
	// entirely and come back as a free-form polygon (appended after
	// horizontals, so numHorizontal should be 0).
	steep := geometry.Polygon{{0, 0}, {20, 10}, {20, 110}, {0, 100}}
	boxes := []detector.Box{{Heatmap: steep, Adjusted: steep}}
	polys, numHorizontal := GroupBoxes(boxes, 0.1, 0.5, 0.5, 0.5, 0, 1)
	if numHorizontal != 0 {
		t.Fatalf("expected steep box classified free-form, got numHorizontal=%d", numHorizontal)
	}
	if len(polys) != 1 {
		t.Fatalf("expected one free-form polygon, got %d", len(polys))
	}
}

func TestExpandFreeFormZeroMarginIsIdentity(t *testing.T) {
	p := geometry.Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	got := expandFreeForm(p, 0)
	if got != p {
		t.Fatalf("expected identity for zero margin, got %+v", got)
	}
}
