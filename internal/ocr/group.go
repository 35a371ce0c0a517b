package ocr

import (
	"math"
	"sort"

	"github.com/your-org/goocr/internal/detector"
	"github.com/your-org/goocr/internal/geometry"
)

// classifiedBox is an intermediate grouping record: either a horizontal
// rectangle summary or a free-form padded quadrilateral.
type classifiedBox struct {
	horizontal bool

	// horizontal fields
	xMin, xMax, yMin, yMax, yCenter, height float64

	// free-form field
	poly geometry.Polygon
}

// GroupBoxes implements spec §4.D: classify each detector box as horizontal
// or free-form, line-group horizontals by Y-center, merge within each line
// by X-gap, margin-expand, and filter by minSize. Returns horizontal
// rectangles (line-major, left-to-right) followed by free-form quadrilaterals
// in discovery order, each as a clockwise-ordered Polygon.
func GroupBoxes(boxes []detector.Box, slopeThs, ycenterThs, heightThs, widthThs, addMargin, minSize float64) ([]geometry.Polygon, int) {
	var horizontals []classifiedBox
	var frees []geometry.Polygon

	for _, b := range boxes {
		p := b.Adjusted
		// p = [p0(topleft), p1(topright), p2(botright), p3(botleft)].
		slopeUp := (p[1].Y - p[0].Y) / math.Max(10, p[1].X-p[0].X)
		slopeDown := (p[2].Y - p[3].Y) / math.Max(10, p[2].X-p[3].X)

		if math.Max(math.Abs(slopeUp), math.Abs(slopeDown)) < slopeThs {
			xMin := p.MinX()
			xMax := p.MaxX()
			yMin := p.MinY()
			yMax := p.MaxY()
			horizontals = append(horizontals, classifiedBox{
				horizontal: true,
				xMin:       xMin, xMax: xMax, yMin: yMin, yMax: yMax,
				yCenter: (yMin + yMax) / 2,
				height:  yMax - yMin,
			})
		} else {
			frees = append(frees, expandFreeForm(p, addMargin))
		}
	}

	lines := groupIntoLines(horizontals, ycenterThs)

	var rects []geometry.Polygon
	for _, line := range lines {
		clusters := mergeLineClusters(line, heightThs, widthThs)
		for _, c := range clusters {
			minW := c.xMin - addMargin*math.Min(c.xMax-c.xMin, c.yMax-c.yMin)
			maxW := c.xMax + addMargin*math.Min(c.xMax-c.xMin, c.yMax-c.yMin)
			minH := c.yMin - addMargin*math.Min(c.xMax-c.xMin, c.yMax-c.yMin)
			maxH := c.yMax + addMargin*math.Min(c.xMax-c.xMin, c.yMax-c.yMin)
			rects = append(rects, geometry.AxisAligned(minW, minH, maxW, maxH))
		}
	}

	out := make([]geometry.Polygon, 0, len(rects)+len(frees))
	for _, r := range rects {
		if math.Max(r.Width(), r.Height()) > minSize {
			out = append(out, r)
		}
	}
	numHorizontal := len(out)
	for _, f := range frees {
		if math.Max(f.Width(), f.Height()) > minSize {
			out = append(out, f)
		}
	}
	return out, numHorizontal
}

// expandFreeForm pads a free-form quadrilateral by moving each vertex outward
// by addMargin*min(w,h) along the ray from the quadrilateral's centroid to
// that vertex; the directions of the edges themselves are not used.
func expandFreeForm(p geometry.Polygon, addMargin float64) geometry.Polygon {
	w := p.Width()
	h := p.Height()
	margin := addMargin * math.Min(w, h)
	if margin == 0 {
		return p
	}

	center := geometry.Point{
		X: (p[0].X + p[1].X + p[2].X + p[3].X) / 4,
		Y: (p[0].Y + p[1].Y + p[2].Y + p[3].Y) / 4,
	}

	var out geometry.Polygon
	for i, pt := range p {
		angle := math.Atan2(pt.Y-center.Y, pt.X-center.X)
		out[i] = geometry.Point{
			X: pt.X + margin*math.Cos(angle),
			Y: pt.Y + margin*math.Sin(angle),
		}
	}
	return out
}

type line struct {
	boxes      []classifiedBox
	meanYCtr   float64
	meanHeight float64
}

// groupIntoLines sorts horizontal boxes by yCenter and greedily assigns each
// to the running line if its yCenter is within ycenterThs*meanLineHeight of
// the line's running mean, else starts a new line.
func groupIntoLines(boxes []classifiedBox, ycenterThs float64) []line {
	sorted := append([]classifiedBox(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].yCenter < sorted[j].yCenter })

	var lines []line
	for _, b := range sorted {
		placed := false
		for i := range lines {
			l := &lines[i]
			if math.Abs(b.yCenter-l.meanYCtr) < ycenterThs*l.meanHeight {
				l.boxes = append(l.boxes, b)
				n := float64(len(l.boxes))
				l.meanYCtr = ((l.meanYCtr * (n - 1)) + b.yCenter) / n
				l.meanHeight = ((l.meanHeight * (n - 1)) + b.height) / n
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, line{boxes: []classifiedBox{b}, meanYCtr: b.yCenter, meanHeight: b.height})
		}
	}
	return lines
}

// mergeLineClusters sorts a line's boxes by xMin and greedily merges
// adjacent boxes into clusters when heights are within heightThs relative
// difference and the horizontal gap is below widthThs*(yMax-yMin).
func mergeLineClusters(l line, heightThs, widthThs float64) []classifiedBox {
	sorted := append([]classifiedBox(nil), l.boxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].xMin < sorted[j].xMin })

	var clusters []classifiedBox
	for _, b := range sorted {
		if len(clusters) == 0 {
			clusters = append(clusters, b)
			continue
		}
		cur := &clusters[len(clusters)-1]
		heightDiff := math.Abs(cur.height-b.height) / math.Max(cur.height, b.height)
		gap := b.xMin - cur.xMax
		if heightDiff <= heightThs && gap < widthThs*(cur.yMax-cur.yMin) {
			cur.xMax = math.Max(cur.xMax, b.xMax)
			cur.yMin = math.Min(cur.yMin, b.yMin)
			cur.yMax = math.Max(cur.yMax, b.yMax)
			cur.height = cur.yMax - cur.yMin
		} else {
			clusters = append(clusters, b)
		}
	}
	return clusters
}
