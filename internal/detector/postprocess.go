package detector

import (
	"math"

	"github.com/your-org/goocr/internal/geometry"
)

// Options bundles the postprocessor thresholds from the recognized Options
// record (spec §3).
type Options struct {
	TextThreshold float64
	LowText       float64
	LinkThreshold float64
}

// Box is a single detector-stage result: its rectangle in heatmap space and
// the same rectangle projected into original-image coordinates.
type Box struct {
	Heatmap  geometry.Polygon
	Adjusted geometry.Polygon
}

// Postprocess implements spec §4.C end-to-end: threshold the two heatmaps,
// flood-fill connected components, suppress link-only pixels, adaptively
// dilate, extract the minimum-area rectangle (falling back to axis-aligned
// for near-square results), order points clockwise, and project back to
// original-image coordinates using ratio/scale.
func Postprocess(text, link Heatmap, opts Options, scaleX, scaleY, ratio float64) []Box {
	width, height := text.Width, text.Height
	n := width * height

	textScore := make([]bool, n)
	linkScore := make([]bool, n)
	combined := make([]bool, n)
	for i := 0; i < n; i++ {
		textScore[i] = text.Data[i] > float32(opts.LowText)
		linkScore[i] = link.Data[i] > float32(opts.LinkThreshold)
		combined[i] = textScore[i] || linkScore[i]
	}

	comps := floodFillComponents(combined, text, width, height)

	var boxes []Box
	for _, comp := range comps {
		if comp.area() < 10 || float64(comp.peakText) < opts.TextThreshold {
			continue
		}

		segmap := make(map[int]bool, len(comp.pixels))
		for _, idx := range comp.pixels {
			// suppress link-only pixels: text didn't fire here.
			segmap[idx] = textScore[idx]
		}

		niter := adaptiveDilationIter(comp.area(), comp.bw(), comp.bh())
		fgPixels := dilateSegmap(comp, segmap, width, height, niter)
		if len(fgPixels) == 0 {
			continue
		}

		pts := make([]geometry.Point, len(fgPixels))
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for i, idx := range fgPixels {
			x := float64(idx % width)
			y := float64(idx / width)
			pts[i] = geometry.Point{X: x, Y: y}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}

		rect := geometry.MinAreaRect(pts)

		// Near-square fallback: if the min-area rect's aspect ratio is
		// within 10% of 1, use the axis-aligned bounding box instead.
		rw := rect.Width()
		rh := rect.Height()
		if rw > 0 && rh > 0 {
			aspect := rw / rh
			if aspect < 1 {
				aspect = 1 / aspect
			}
			if aspect < 1.1 {
				rect = geometry.AxisAligned(minX, minY, maxX, maxY)
			}
		}

		heatmapBox := geometry.OrderClockwiseFromTopLeft([4]geometry.Point{rect[0], rect[1], rect[2], rect[3]})
		adjusted := projectToOriginal(heatmapBox, scaleX, scaleY, ratio)

		boxes = append(boxes, Box{Heatmap: heatmapBox, Adjusted: adjusted})
	}

	return boxes
}

// projectToOriginal divides heatmap-space coordinates by (scaleX/ratio,
// scaleY/ratio) to recover original-image coordinates, per spec §4.C step 8.
func projectToOriginal(box geometry.Polygon, scaleX, scaleY, ratio float64) geometry.Polygon {
	fx := scaleX / ratio
	fy := scaleY / ratio
	var out geometry.Polygon
	for i, p := range box {
		out[i] = geometry.Point{X: p.X / fx, Y: p.Y / fy}
	}
	return out
}
