package shapes

import (
	"math"

	"prettypoly/internal/geom"
)

// Line returns a thick line from (x1, y1) to (x2, y2) as a rectangle of the
// given thickness, built from the line's unit perpendicular.
func Line(x1, y1, x2, y2, thickness float64) geom.Polygon {
	vx, vy := y2-y1, x2-x1
	mag := math.Sqrt(vx*vx + vy*vy)

	t := thickness / 2.0
	vx = vx / mag * -t
	vy = vy / mag * t

	return geom.NewPolygon(geom.NewPath([]geom.Point{
		{X: x1 + vx, Y: y1 + vy},
		{X: x2 + vx, Y: y2 + vy},
		{X: x2 - vx, Y: y2 - vy},
		{X: x1 - vx, Y: y1 - vy},
	}))
}
