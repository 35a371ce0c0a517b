// Package geometry holds the Point/Box/Polygon primitives shared by the
// detector postprocessor, box grouper, and crop builder.
package geometry

import "math"

// Point is an (x, y) floating pair in image coordinates.
type Point struct {
	X, Y float64
}

// Polygon is an ordered 4-tuple of points. After post-processing the
// convention is: first point is top-left (min x+y), remainder clockwise.
type Polygon [4]Point

// MinX, MaxX, MinY, MaxY return the polygon's axis-aligned extent.
func (p Polygon) MinX() float64 { return minOf(p[0].X, p[1].X, p[2].X, p[3].X) }
func (p Polygon) MaxX() float64 { return maxOf(p[0].X, p[1].X, p[2].X, p[3].X) }
func (p Polygon) MinY() float64 { return minOf(p[0].Y, p[1].Y, p[2].Y, p[3].Y) }
func (p Polygon) MaxY() float64 { return maxOf(p[0].Y, p[1].Y, p[2].Y, p[3].Y) }

// Width and Height are the axis-aligned bounding extents.
func (p Polygon) Width() float64  { return p.MaxX() - p.MinX() }
func (p Polygon) Height() float64 { return p.MaxY() - p.MinY() }

// AxisAligned builds a 4-point clockwise rectangle from (minX,minY)-(maxX,maxY).
func AxisAligned(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

// OrderClockwiseFromTopLeft reorders an arbitrary 4-point set so the first
// point is the one with minimum (x+y), and the remainder proceed clockwise.
// The rotation search starts from the existing order so only a cyclic shift
// (never a reflection) is applied — callers must already hand in points in
// a consistent winding order.
func OrderClockwiseFromTopLeft(pts [4]Point) Polygon {
	minIdx := 0
	minSum := pts[0].X + pts[0].Y
	for i := 1; i < 4; i++ {
		if s := pts[i].X + pts[i].Y; s < minSum {
			minSum = s
			minIdx = i
		}
	}
	var out Polygon
	for i := 0; i < 4; i++ {
		out[i] = pts[(minIdx+i)%4]
	}
	return out
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func minOf(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals ...float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
