package shapes

import (
	"math"

	"prettypoly/internal/geom"
)

// gearToothSpread is the half-angle, in radians, each tooth flank is offset
// from its nominal position — small enough to read as a tooth, not a notch.
const gearToothSpread = 0.05

// Gear returns a gear outline centered at (x, y) with teeth teeth, an
// addendum circle of outerRadius and a dedendum circle of innerRadius. Each
// tooth has two flanks (4*teeth points in all); each flank is two points,
// one per radius, offset -gearToothSpread and +gearToothSpread radians from
// the flank's nominal angle, alternating which radius leads, producing a
// trapezoidal tooth profile rather than a plain zigzag.
func Gear(x, y float64, teeth int, outerRadius, innerRadius float64) geom.Polygon {
	return geom.NewPolygon(gearPath(x, y, teeth, outerRadius, innerRadius))
}

// StrokedGear returns a gear outline of the given thickness paired with a
// plain circular bore, not a smaller gear: the inner contour is a circle of
// radius innerRadius-thickness.
func StrokedGear(x, y float64, teeth int, outerRadius, innerRadius, thickness float64) geom.Polygon {
	outer := gearPath(x, y, teeth, outerRadius, innerRadius)
	inner := regularPath(x, y, innerRadius-thickness, circleSides(innerRadius-thickness))
	return geom.NewPolygon(outer, inner)
}

func gearPath(x, y float64, teeth int, outerRadius, innerRadius float64) geom.Path {
	n := teeth * 2
	points := make([]geom.Point, 0, n*2)
	for i := 0; i < n; i++ {
		base := (2 * math.Pi / float64(n)) * float64(i)

		leadStep := base - gearToothSpread
		leadR := outerRadius
		if i%2 != 0 {
			leadR = innerRadius
		}
		points = append(points, geom.Point{
			X: math.Sin(leadStep)*leadR + x,
			Y: math.Cos(leadStep)*leadR + y,
		})

		trailStep := base + gearToothSpread
		trailR := innerRadius
		if i%2 != 0 {
			trailR = outerRadius
		}
		points = append(points, geom.Point{
			X: math.Sin(trailStep)*trailR + x,
			Y: math.Cos(trailStep)*trailR + y,
		})
	}
	return geom.NewPath(points)
}
