package geometry

import (
	"math"
	"sort"
)

// ConvexHull computes the convex hull of a point set using Andrew's monotone
// chain algorithm, returning hull vertices in counter-clockwise order with
// no duplicate closing point. Collinear points on a hull edge are dropped.
func ConvexHull(points []Point) []Point {
	pts := append([]Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	pts = dedupe(pts)
	n := len(pts)
	if n < 3 {
		return pts
	}

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]Point, 0, n)
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

func dedupe(sorted []Point) []Point {
	out := sorted[:0:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// MinAreaRect computes the minimum-area rectangle enclosing points via
// rotating calipers over the convex hull's edges: for each edge, rotate the
// whole hull by the edge's angle, take the axis-aligned bounding box of the
// rotated hull, compute its area, and keep the rotation with minimum area.
// Returns the rectangle's 4 corners in original coordinates.
func MinAreaRect(points []Point) Polygon {
	hull := ConvexHull(points)
	if len(hull) == 0 {
		return Polygon{}
	}
	if len(hull) == 1 {
		return Polygon{hull[0], hull[0], hull[0], hull[0]}
	}
	if len(hull) == 2 {
		return Polygon{hull[0], hull[1], hull[1], hull[0]}
	}

	bestArea := math.Inf(1)
	var best Polygon

	n := len(hull)
	for i := 0; i < n; i++ {
		p0 := hull[i]
		p1 := hull[(i+1)%n]
		angle := math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
		cosA := math.Cos(-angle)
		sinA := math.Sin(-angle)

		minX, maxX := math.Inf(1), math.Inf(-1)
		minY, maxY := math.Inf(1), math.Inf(-1)
		rotated := make([]Point, n)
		for j, p := range hull {
			rx := p.X*cosA - p.Y*sinA
			ry := p.X*sinA + p.Y*cosA
			rotated[j] = Point{rx, ry}
			if rx < minX {
				minX = rx
			}
			if rx > maxX {
				maxX = rx
			}
			if ry < minY {
				minY = ry
			}
			if ry > maxY {
				maxY = ry
			}
		}

		area := (maxX - minX) * (maxY - minY)
		if area < bestArea {
			bestArea = area
			// rotate the 4 rectangle corners back to original space.
			cosB := math.Cos(angle)
			sinB := math.Sin(angle)
			corners := [4]Point{
				{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
			}
			var rect [4]Point
			for k, c := range corners {
				ox := c.X*cosB - c.Y*sinB
				oy := c.X*sinB + c.Y*cosB
				rect[k] = Point{ox, oy}
			}
			best = OrderClockwiseFromTopLeft(rect)
		}
	}
	return best
}
