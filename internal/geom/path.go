package geom

import "math"

// Path is an ordered, implicitly closed loop of vertices: the edge between
// the last and first point exists without an explicit closing point. A path
// needs at least 3 points to enclose any area; shorter paths are harmless
// and simply contribute nothing to the render.
type Path struct {
	Points []Point
}

// NewPath builds a Path from the given points. The slice is copied so the
// caller may reuse or mutate it afterward.
func NewPath(points []Point) Path {
	p := Path{Points: make([]Point, len(points))}
	copy(p.Points, points)
	return p
}

// Bounds returns the axis-aligned bounding rectangle of the path's points.
// The second return value is false for a path with no points.
func (p Path) Bounds() (Rect, bool) {
	if len(p.Points) == 0 {
		return Rect{}, false
	}
	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Edge returns the i-th edge of the path as (start, end), where the edge
// following the last point wraps around to the first — the implicit closing
// edge. i must be in [0, len(Points)).
func (p Path) Edge(i int) (Point, Point) {
	n := len(p.Points)
	return p.Points[i], p.Points[(i+1)%n]
}
