package shapes

import (
	"math"

	"prettypoly/internal/geom"
)

// Rectangle returns the axis-aligned rectangle with top-left corner (x, y)
// and the given width and height.
func Rectangle(x, y, w, h float64) geom.Polygon {
	return geom.NewPolygon(rectPath(x, y, w, h))
}

// StrokedRectangle returns a rectangle outline of the given thickness: an
// outer contour at (x, y, w, h) and an inner contour inset by thickness on
// every side.
func StrokedRectangle(x, y, w, h, thickness float64) geom.Polygon {
	outer := rectPath(x, y, w, h)
	t := thickness
	inner := rectPath(x+t, y+t, w-2*t, h-2*t)
	return geom.NewPolygon(outer, inner)
}

func rectPath(x, y, w, h float64) geom.Path {
	return geom.NewPath([]geom.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
}

// RoundedRectangle returns a rectangle with independently radiused corners.
// tlr, trr, brr, blr are the top-left, top-right, bottom-right and
// bottom-left corner radii; a radius of 0 leaves that corner square.
func RoundedRectangle(x, y, w, h, tlr, trr, brr, blr float64) geom.Polygon {
	return geom.NewPolygon(roundedRectPath(x, y, w, h, tlr, trr, brr, blr))
}

// StrokedRoundedRectangle returns a rounded-rectangle outline of the given
// thickness. The inner contour's corner radii shrink by thickness (clamped
// at 0) along with the inset, so the ring keeps a constant width around
// every corner.
func StrokedRoundedRectangle(x, y, w, h, tlr, trr, brr, blr, thickness float64) geom.Polygon {
	outer := roundedRectPath(x, y, w, h, tlr, trr, brr, blr)

	t := thickness
	tlr = math.Max(0, tlr-t)
	trr = math.Max(0, trr-t)
	brr = math.Max(0, brr-t)
	blr = math.Max(0, blr-t)
	inner := roundedRectPath(x+t, y+t, w-2*t, h-2*t, tlr, trr, brr, blr)

	return geom.NewPolygon(outer, inner)
}

// roundedRectPath walks the four corners in order (top-left, top-right,
// bottom-right, bottom-left), emitting a single square-cornered point where
// a radius is zero and an arc of points otherwise.
func roundedRectPath(x, y, w, h, tlr, trr, brr, blr float64) geom.Path {
	var points []geom.Point

	if tlr == 0 {
		points = append(points, geom.Point{X: x, Y: y})
	} else {
		points = appendCornerArc(points, x+tlr, y+tlr, tlr, 3)
	}
	if trr == 0 {
		points = append(points, geom.Point{X: x + w, Y: y})
	} else {
		points = appendCornerArc(points, x+w-trr, y+trr, trr, 2)
	}
	if brr == 0 {
		points = append(points, geom.Point{X: x + w, Y: y + h})
	} else {
		points = appendCornerArc(points, x+w-brr, y+h-brr, brr, 1)
	}
	if blr == 0 {
		points = append(points, geom.Point{X: x, Y: y + h})
	} else {
		points = appendCornerArc(points, x+blr, y+h-blr, blr, 0)
	}

	return geom.NewPath(points)
}

// cornerQuality is how many units of radius each corner-arc step covers;
// lower gives more points and a smoother corner. Picked by the same eyeballing the rest of the curve-step
// formulas in this package use.
const cornerQuality = 5.0

// appendCornerArc appends the points of a quarter-circle of radius r
// centered at (cx, cy), covering the corner selected by q (0 bottom-left,
// 1 bottom-right, 2 top-right, 3 top-left, in screen space with y down),
// swept clockwise on screen, and returns the extended slice.
func appendCornerArc(points []geom.Point, cx, cy, r float64, q int) []geom.Point {
	steps := int(math.Ceil(r/cornerQuality)) + 2
	delta := -(math.Pi / 2) / float64(steps)
	theta := (math.Pi / 2) * float64(q)
	for i := 0; i <= steps; i++ {
		xo := math.Sin(theta) * r
		yo := math.Cos(theta) * r
		points = append(points, geom.Point{X: cx + xo, Y: cy + yo})
		theta += delta
	}
	return points
}
