package shapes

import (
	"math"

	"prettypoly/internal/geom"
)

// Regular returns a regular polygon of the given number of sides, centered
// at (x, y) with circumradius r. sides must be at least 3.
func Regular(x, y, r float64, sides int) geom.Polygon {
	return geom.NewPolygon(regularPath(x, y, r, sides))
}

// StrokedRegular returns a regular-polygon outline of the given thickness.
func StrokedRegular(x, y, r float64, sides int, thickness float64) geom.Polygon {
	outer := regularPath(x, y, r, sides)
	inner := regularPath(x, y, r-thickness, sides)
	return geom.NewPolygon(outer, inner)
}

func regularPath(x, y, r float64, sides int) geom.Path {
	points := make([]geom.Point, sides)
	for i := 0; i < sides; i++ {
		step := (2 * math.Pi / float64(sides)) * float64(i)
		points[i] = geom.Point{
			X: math.Sin(step)*r + x,
			Y: math.Cos(step)*r + y,
		}
	}
	return geom.NewPath(points)
}

// circleSides picks an edge count for a circle of radius r: one point per
// unit radius, floored at 8 so small circles stay recognizably round.
func circleSides(r float64) int {
	sides := int(r)
	if sides < 8 {
		sides = 8
	}
	return sides
}

// Circle returns a circle approximated as a regular polygon, centered at
// (x, y) with radius r.
func Circle(x, y, r float64) geom.Polygon {
	return Regular(x, y, r, circleSides(r))
}

// StrokedCircle returns a circle outline of the given thickness.
func StrokedCircle(x, y, r, thickness float64) geom.Polygon {
	return StrokedRegular(x, y, r, circleSides(r), thickness)
}

// Star returns a points-pointed star centered at (x, y), alternating between
// outerRadius and innerRadius every vertex.
func Star(x, y float64, points int, outerRadius, innerRadius float64) geom.Polygon {
	return geom.NewPolygon(starPath(x, y, points, outerRadius, innerRadius))
}

// StrokedStar returns a star outline of the given thickness. The inner
// contour's inner radius shrinks by thickness directly; its outer radius
// shrinks by the same proportion outerRadius bears to innerRadius, so the
// ring stays a constant width along both the points and the valleys.
func StrokedStar(x, y float64, points int, outerRadius, innerRadius, thickness float64) geom.Polygon {
	outer := starPath(x, y, points, outerRadius, innerRadius)
	innerOuterRadius := outerRadius - (thickness * outerRadius / innerRadius)
	inner := starPath(x, y, points, innerOuterRadius, innerRadius-thickness)
	return geom.NewPolygon(outer, inner)
}

func starPath(x, y float64, points int, outerRadius, innerRadius float64) geom.Path {
	n := points * 2
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		step := (2 * math.Pi / float64(n)) * float64(i)
		r := outerRadius
		if i%2 != 0 {
			r = innerRadius
		}
		pts[i] = geom.Point{
			X: math.Sin(step)*r + x,
			Y: math.Cos(step)*r + y,
		}
	}
	return geom.NewPath(pts)
}
