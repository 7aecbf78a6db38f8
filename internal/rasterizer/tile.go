package rasterizer

import "prettypoly/internal/geom"

// Tile is a rectangular patch of output-coordinate coverage handed to the
// caller's callback. Data is row-major, Data[x+y*Stride] holds the raw
// coverage byte for tile-local (x, y), in [0, antialias.Coverage()].
//
// The slice backing Data is owned by the Renderer and reused across tiles
// within a single Render call: a callback must not retain it past return.
type Tile struct {
	Bounds geom.Rect
	Stride int
	Data   []byte

	antialias AntialiasLevel
}

// Value returns the coverage at tile-local (x, y) scaled into [0, 255],
// for callers that would rather not special-case the antialias level.
func (t Tile) Value(x, y int) int {
	raw := int(t.Data[x+y*t.Stride])
	return raw * (255 >> uint(t.antialias) >> uint(t.antialias))
}

// Raw returns the unscaled coverage byte at tile-local (x, y).
func (t Tile) Raw(x, y int) byte {
	return t.Data[x+y*t.Stride]
}

// Callback is the per-tile sink a Renderer invokes once for every non-empty
// tile it produces, synchronously and in row-major tile order. It must not
// call Render again — re-entrancy is neither required nor supported.
type Callback func(Tile)
