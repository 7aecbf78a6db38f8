// Package geom provides the polygon data model consumed by the rasterizer:
// points, rectangles, paths and polygons. It holds no rendering state and
// mutates nothing handed to it by the caller.
package geom

import "prettypoly/internal/transform"

// Point is a single vertex coordinate. Coordinates are float64 throughout the
// package; the rasterizer scales and truncates to integers only once it has
// entered supersample space.
type Point struct {
	X, Y float64
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns the componentwise product of p and q.
func (p Point) Mul(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

// Div returns the componentwise quotient p / q.
func (p Point) Div(q Point) Point {
	return Point{p.X / q.X, p.Y / q.Y}
}

// Scale returns p scaled uniformly by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Transform applies the affine matrix m to p.
func (p Point) Transform(m transform.Matrix3) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{x, y}
}
