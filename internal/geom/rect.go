package geom

import (
	"math"

	"prettypoly/internal/transform"
)

// Rect is an axis-aligned integer rectangle. It is empty when W or H is zero.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.W == 0 || r.H == 0
}

// Intersection returns the overlap of r and other, or the empty rectangle if
// they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	w := max(0, min(r.X+r.W, other.X+other.W)-x)
	h := max(0, min(r.Y+r.H, other.Y+other.H)-y)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Merge returns the smallest rectangle containing both r and other.
func (r Rect) Merge(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.X+r.W, other.X+other.W) - x,
		H: max(r.Y+r.H, other.Y+other.H) - y,
	}
}

// Transform returns the axis-aligned bound of r's four corners after applying m.
// This is deliberately the bound of the transformed corners, not a tighter
// transform of the bound — slightly larger under rotation but cheap and safe.
func (r Rect) Transform(m transform.Matrix3) Rect {
	corners := [4]Point{
		{float64(r.X), float64(r.Y)},
		{float64(r.X + r.W), float64(r.Y)},
		{float64(r.X), float64(r.Y + r.H)},
		{float64(r.X + r.W), float64(r.Y + r.H)},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		tx, ty := m.Apply(c.X, c.Y)
		minX = math.Min(minX, tx)
		minY = math.Min(minY, ty)
		maxX = math.Max(maxX, tx)
		maxY = math.Max(maxY, ty)
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
