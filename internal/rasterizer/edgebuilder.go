package rasterizer

import (
	"prettypoly/internal/geom"
	"prettypoly/internal/transform"
)

// buildNodes walks every edge of path and records its intersections into
// nodes. tileBounds is the current tile's bounds in output coordinates;
// xform, if non-nil, is applied to every point before it enters supersample
// space. width is the full supersampled tile width, used to clamp.
func buildNodes(nodes *nodeTable, path geom.Path, tileBounds geom.Rect, xform *transform.Matrix3, antialias AntialiasLevel, width int) {
	n := len(path.Points)
	if n < 2 {
		return
	}

	scale := float64(antialias.Factor())
	originX := float64(tileBounds.X) * scale
	originY := float64(tileBounds.Y) * scale

	toTileLocal := func(p geom.Point) (int, int) {
		if xform != nil {
			p = p.Transform(*xform)
		}
		x := p.X*scale - originX
		y := p.Y*scale - originY
		return int(x), int(y)
	}

	lastX, lastY := toTileLocal(path.Points[n-1])
	for i := 0; i < n; i++ {
		x, y := toTileLocal(path.Points[i])
		nodes.addEdge(lastX, lastY, x, y, width)
		lastX, lastY = x, y
	}
}
