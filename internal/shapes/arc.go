package shapes

import (
	"math"

	"prettypoly/internal/geom"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// arcSides picks a step count for an arc of radius r: one segment per unit
// radius, floored at 8.
func arcSides(r float64) int {
	sides := int(r)
	if sides < 8 {
		sides = 8
	}
	return sides
}

// Pie returns a pie-slice: the center point plus an arc from startDeg toward
// endDeg (measured in degrees, clockwise from the positive y-axis) at
// radius r. The arc has arcSides(r) points starting at startDeg; the last
// one lies one step short of endDeg, not at endDeg itself.
func Pie(x, y, r, startDeg, endDeg float64) geom.Polygon {
	sa, ea := degToRad(startDeg), degToRad(endDeg)
	steps := arcSides(r)
	astep := (ea - sa) / float64(steps)

	points := make([]geom.Point, 0, steps+1)
	points = append(points, geom.Point{X: x, Y: y})
	for i := 0; i < steps; i++ {
		a := sa + astep*float64(i)
		points = append(points, geom.Point{
			X: math.Sin(a)*r + x,
			Y: math.Cos(a)*r + y,
		})
	}
	return geom.NewPolygon(geom.NewPath(points))
}

// Arc returns a ring segment of the given thickness spanning startDeg to
// endDeg at radius r: the outward sweep at r, then back along the inward
// sweep at r-thickness, closing into a single path.
func Arc(x, y, r, startDeg, endDeg, thickness float64) geom.Polygon {
	sa, ea := degToRad(startDeg), degToRad(endDeg)
	steps := arcSides(r)
	astep := (ea - sa) / float64(steps)

	points := make([]geom.Point, 0, 2*(steps+1))

	a := sa
	for i := 0; i <= steps; i++ {
		points = append(points, geom.Point{X: math.Sin(a)*r + x, Y: math.Cos(a)*r + y})
		a += astep
	}

	innerR := r - thickness
	a = ea
	for i := 0; i <= steps; i++ {
		points = append(points, geom.Point{X: math.Sin(a)*innerR + x, Y: math.Cos(a)*innerR + y})
		a -= astep
	}

	return geom.NewPolygon(geom.NewPath(points))
}
