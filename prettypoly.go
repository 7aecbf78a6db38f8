// Package prettypoly is a tile-based, antialiased polygon rasterizer aimed
// at resource-constrained targets: it never allocates a full-frame coverage
// map, walking the output one small tile at a time and handing each
// non-empty tile to a caller-supplied callback. Fill is always even-odd;
// holes and stroked outlines are expressed as extra contours on the same
// polygon, not a separate concept.
//
// The package is a thin facade over prettypoly/internal/rasterizer (the
// core engine), prettypoly/internal/geom (points, paths, polygons),
// prettypoly/internal/transform (the affine matrix), and
// prettypoly/internal/shapes (point-array constructors for common
// primitives). Programs outside this module use this package only: Go does
// not allow the internal packages to be imported from other modules.
package prettypoly

import (
	"prettypoly/internal/geom"
	"prettypoly/internal/rasterizer"
	"prettypoly/internal/shapes"
	"prettypoly/internal/transform"
)

// Re-exported types so callers need only import this one package.
type (
	Point          = geom.Point
	Rect           = geom.Rect
	Path           = geom.Path
	Polygon        = geom.Polygon
	Matrix         = transform.Matrix3
	AntialiasLevel = rasterizer.AntialiasLevel
	Tile           = rasterizer.Tile
	Callback       = rasterizer.Callback
	Renderer       = rasterizer.Renderer
)

// Antialias level constants, re-exported for callers of SetAntialias.
const (
	AntialiasNone = rasterizer.AntialiasNone
	AntialiasX4   = rasterizer.AntialiasX4
	AntialiasX16  = rasterizer.AntialiasX16
)

// NewRenderer returns a Renderer configured with the package's default
// capacities. Call SetCallback before Render; a Renderer with no callback
// installed renders nothing.
func NewRenderer() *Renderer {
	return rasterizer.NewRenderer()
}

// NewRendererWithCapacity returns a Renderer sized for constrained targets.
// See rasterizer.NewRendererWithCapacity for the meaning of each parameter.
func NewRendererWithCapacity(maxScanlines, maxIntersections, tileBufferSize int) *Renderer {
	return rasterizer.NewRendererWithCapacity(maxScanlines, maxIntersections, tileBufferSize)
}

// NewPath builds a Path from the given points.
func NewPath(points []Point) Path { return geom.NewPath(points) }

// NewPolygon builds a Polygon from the given paths.
func NewPolygon(paths ...Path) Polygon { return geom.NewPolygon(paths...) }

// Transform constructors, re-exported from internal/transform.
func Identity() Matrix                { return transform.Identity() }
func Rotation(degrees float64) Matrix { return transform.Rotation(degrees) }
func Translation(x, y float64) Matrix { return transform.Translation(x, y) }
func Scale(x, y float64) Matrix       { return transform.Scale(x, y) }

// Shape constructors, re-exported from internal/shapes.
func Rectangle(x, y, w, h float64) Polygon { return shapes.Rectangle(x, y, w, h) }
func StrokedRectangle(x, y, w, h, thickness float64) Polygon {
	return shapes.StrokedRectangle(x, y, w, h, thickness)
}
func RoundedRectangle(x, y, w, h, tlr, trr, brr, blr float64) Polygon {
	return shapes.RoundedRectangle(x, y, w, h, tlr, trr, brr, blr)
}
func StrokedRoundedRectangle(x, y, w, h, tlr, trr, brr, blr, thickness float64) Polygon {
	return shapes.StrokedRoundedRectangle(x, y, w, h, tlr, trr, brr, blr, thickness)
}
func Regular(x, y, r float64, sides int) Polygon { return shapes.Regular(x, y, r, sides) }
func StrokedRegular(x, y, r float64, sides int, thickness float64) Polygon {
	return shapes.StrokedRegular(x, y, r, sides, thickness)
}
func Circle(x, y, r float64) Polygon { return shapes.Circle(x, y, r) }
func StrokedCircle(x, y, r, thickness float64) Polygon {
	return shapes.StrokedCircle(x, y, r, thickness)
}
func Star(x, y float64, points int, outerRadius, innerRadius float64) Polygon {
	return shapes.Star(x, y, points, outerRadius, innerRadius)
}
func StrokedStar(x, y float64, points int, outerRadius, innerRadius, thickness float64) Polygon {
	return shapes.StrokedStar(x, y, points, outerRadius, innerRadius, thickness)
}
func Gear(x, y float64, teeth int, outerRadius, innerRadius float64) Polygon {
	return shapes.Gear(x, y, teeth, outerRadius, innerRadius)
}
func StrokedGear(x, y float64, teeth int, outerRadius, innerRadius, thickness float64) Polygon {
	return shapes.StrokedGear(x, y, teeth, outerRadius, innerRadius, thickness)
}
func Pie(x, y, r, startDeg, endDeg float64) Polygon { return shapes.Pie(x, y, r, startDeg, endDeg) }
func Arc(x, y, r, startDeg, endDeg, thickness float64) Polygon {
	return shapes.Arc(x, y, r, startDeg, endDeg, thickness)
}
func Line(x1, y1, x2, y2, thickness float64) Polygon {
	return shapes.Line(x1, y1, x2, y2, thickness)
}
