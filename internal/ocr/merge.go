package ocr

import (
	"math"
	"sort"
	"strings"

	"github.com/your-org/goocr/internal/geometry"
)

// Recognized is one recognizer result prior to optional line merging: the
// source polygon, rotation tag it was decoded from, text, and confidence.
type Recognized struct {
	Polygon    geometry.Polygon
	Rotation   int
	Text       string
	Confidence float64
}

// MergeLines implements spec §4.H step 6: group recognized results by
// rotation tag (distinct angles never merge into each other), then by
// line using the box-grouping Y-center/X-gap thresholds, joining text
// with a single space, taking the minimum confidence across the line, and
// axis-aligned-unioning the member boxes. xThs is a pixel gap threshold
// scaled by the running line height, per the resolved Open Question on
// line-merge gap semantics. maxAngleDeg gates a box out of clustering
// altogether once its own top-edge tilt reaches it (spec §8's
// rotation-boundary scenario): a box tilted past the limit is emitted
// standalone, never joined to a neighbor regardless of yThs/xThs.
func MergeLines(results []Recognized, yThs, xThs, maxAngleDeg float64) []Recognized {
	byRotation := map[int][]Recognized{}
	var order []int
	for _, r := range results {
		if _, ok := byRotation[r.Rotation]; !ok {
			order = append(order, r.Rotation)
		}
		byRotation[r.Rotation] = append(byRotation[r.Rotation], r)
	}
	sort.Ints(order)

	var out []Recognized
	for _, rot := range order {
		out = append(out, mergeGroup(byRotation[rot], rot, yThs, xThs, maxAngleDeg)...)
	}
	return out
}

// topEdgeAngleDeg is the tilt of a polygon's top edge (p0->p1) off
// horizontal, in degrees, per spec §4.D's clockwise-from-top-left
// convention.
func topEdgeAngleDeg(p geometry.Polygon) float64 {
	return math.Atan2(p[1].Y-p[0].Y, p[1].X-p[0].X) * 180 / math.Pi
}

func mergeGroup(group []Recognized, rotation int, yThs, xThs, maxAngleDeg float64) []Recognized {
	sorted := append([]Recognized(nil), group...)
	sort.Slice(sorted, func(i, j int) bool {
		return yCenterOf(sorted[i].Polygon) < yCenterOf(sorted[j].Polygon)
	})

	type lineAcc struct {
		members    []Recognized
		meanYCtr   float64
		meanHeight float64
	}
	var lines []lineAcc
	for _, r := range sorted {
		yc := yCenterOf(r.Polygon)
		h := r.Polygon.Height()
		placed := false
		for i := range lines {
			l := &lines[i]
			if math.Abs(yc-l.meanYCtr) < yThs*l.meanHeight {
				l.members = append(l.members, r)
				n := float64(len(l.members))
				l.meanYCtr = ((l.meanYCtr * (n - 1)) + yc) / n
				l.meanHeight = ((l.meanHeight * (n - 1)) + h) / n
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, lineAcc{members: []Recognized{r}, meanYCtr: yc, meanHeight: h})
		}
	}

	var out []Recognized
	for _, l := range lines {
		sort.Slice(l.members, func(i, j int) bool {
			return l.members[i].Polygon.MinX() < l.members[j].Polygon.MinX()
		})

		var clusters [][]Recognized
		for _, m := range l.members {
			if len(clusters) == 0 {
				clusters = append(clusters, []Recognized{m})
				continue
			}
			cur := clusters[len(clusters)-1]
			last := cur[len(cur)-1]
			gap := m.Polygon.MinX() - last.Polygon.MaxX()
			lineHeight := l.meanHeight
			withinAngle := math.Abs(topEdgeAngleDeg(m.Polygon)) < maxAngleDeg && math.Abs(topEdgeAngleDeg(last.Polygon)) < maxAngleDeg
			if withinAngle && gap <= xThs*lineHeight {
				clusters[len(clusters)-1] = append(cur, m)
			} else {
				clusters = append(clusters, []Recognized{m})
			}
		}

		for _, c := range clusters {
			out = append(out, joinCluster(c, rotation))
		}
	}
	return out
}

func yCenterOf(p geometry.Polygon) float64 {
	return (p.MinY() + p.MaxY()) / 2
}

func joinCluster(c []Recognized, rotation int) Recognized {
	if len(c) == 1 {
		return c[0]
	}

	texts := make([]string, 0, len(c))
	minConf := c[0].Confidence
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, r := range c {
		texts = append(texts, r.Text)
		if r.Confidence < minConf {
			minConf = r.Confidence
		}
		minX = math.Min(minX, r.Polygon.MinX())
		minY = math.Min(minY, r.Polygon.MinY())
		maxX = math.Max(maxX, r.Polygon.MaxX())
		maxY = math.Max(maxY, r.Polygon.MaxY())
	}

	return Recognized{
		Polygon:    geometry.AxisAligned(minX, minY, maxX, maxY),
		Rotation:   rotation,
		Text:       strings.Join(texts, " "),
		Confidence: minConf,
	}
}
