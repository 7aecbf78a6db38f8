// Package rasterizer implements the tile-based, even-odd polygon
// rasterizer: given a polygon and an affine transform, it walks tiles of
// output coverage and hands each non-empty one to a caller-supplied
// callback. It performs no I/O and allocates nothing once constructed.
package rasterizer

import (
	"prettypoly/internal/geom"
	"prettypoly/internal/transform"
)

// Renderer holds the rasterizer's configuration and scratch state. The
// reference implementation this package is modeled on kept this state in
// module-level globals, which works on a single-threaded microcontroller but
// forbids more than one render in flight at a time. Renderer makes that
// state an explicit, caller-owned value instead: allocate one Renderer per
// concurrent render, reuse each across many Render calls, and get the same
// zero-allocation-per-render behavior with no shared mutable state.
type Renderer struct {
	clip      geom.Rect
	callback  Callback
	antialias AntialiasLevel
	xform     *transform.Matrix3

	tileBounds geom.Rect // current tile window size in output coordinates
	tileBuffer []byte    // stride*height + 1 padding byte
	nodes      *nodeTable

	maxScanlines     int
	maxIntersections int
	tileBufferSize   int
}

// NewRenderer returns a Renderer configured with the package's default
// capacities: a 32-row node table, 32 intersections per scanline, and a
// 1024-byte tile buffer.
func NewRenderer() *Renderer {
	return NewRendererWithCapacity(DefaultMaxScanlines, DefaultMaxIntersections, DefaultTileBufferSize)
}

// NewRendererWithCapacity returns a Renderer sized for constrained targets:
// maxScanlines bounds how many supersampled rows the node table covers,
// maxIntersections bounds edge crossings per scanline, and tileBufferSize
// bounds the byte budget of one output tile (plus one padding byte, added
// internally).
func NewRendererWithCapacity(maxScanlines, maxIntersections, tileBufferSize int) *Renderer {
	r := &Renderer{
		clip:             defaultClip(),
		antialias:        AntialiasNone,
		maxScanlines:     maxScanlines,
		maxIntersections: maxIntersections,
		tileBufferSize:   tileBufferSize,
		nodes:            newNodeTable(maxScanlines, maxIntersections),
		tileBuffer:       make([]byte, tileBufferSize+1),
	}
	r.recomputeTileBounds()
	return r
}

// SetClip replaces the active clip rectangle; subsequent renders emit only
// tiles intersecting it.
func (r *Renderer) SetClip(clip geom.Rect) {
	r.clip = clip
}

// SetCallback installs the per-tile sink. A Renderer with no callback
// installed silently produces no output; Render is a safe no-op rather than
// a crash.
func (r *Renderer) SetCallback(cb Callback) {
	r.callback = cb
}

// SetAntialias sets the supersample factor and recomputes the tile geometry
// so the supersampled tile height continues to fit the node table's fixed
// scanline capacity.
func (r *Renderer) SetAntialias(level AntialiasLevel) {
	r.antialias = level
	r.recomputeTileBounds()
}

// SetTransform installs an affine transform applied to every input point
// before rasterization, or clears it when xform is nil.
func (r *Renderer) SetTransform(xform *transform.Matrix3) {
	r.xform = xform
}

// DroppedIntersections returns the number of scanline-edge crossings that
// have been dropped since this Renderer was created because a scanline's
// intersection capacity was exceeded. A non-zero count is a visible
// rendering artifact, not an error; callers may poll this for diagnostics.
func (r *Renderer) DroppedIntersections() uint64 {
	return r.nodes.dropped
}

func (r *Renderer) recomputeTileBounds() {
	outputHeight := r.maxScanlines >> uint(r.antialias)
	if outputHeight < 1 {
		outputHeight = 1
	}
	r.tileBounds = geom.Rect{
		X: 0, Y: 0,
		W: r.tileBufferSize / outputHeight,
		H: outputHeight,
	}
}

// Render rasterizes polygon synchronously, invoking the installed callback
// once per non-empty tile, in ascending-y-then-x tile order. A polygon with
// no paths, or only zero-length paths, produces zero callback invocations.
func (r *Renderer) Render(polygon geom.Polygon) {
	if r.callback == nil || polygon.Empty() {
		return
	}

	bounds, ok := polygon.Bounds()
	if !ok {
		return
	}
	if r.xform != nil {
		bounds = bounds.Transform(*r.xform)
	}

	for y := bounds.Y; y < bounds.Y+bounds.H; y += r.tileBounds.H {
		for x := bounds.X; x < bounds.X+bounds.W; x += r.tileBounds.W {
			window := geom.Rect{X: x, Y: y, W: r.tileBounds.W, H: r.tileBounds.H}
			tileRect := window.Intersection(r.clip)
			if tileRect.Empty() {
				continue
			}

			r.renderTile(polygon, tileRect)
		}
	}
}

// renderTile builds and renders a single tile, then — if it produced any
// coverage — dispatches it to the callback, trimmed to its dirty bound.
func (r *Renderer) renderTile(polygon geom.Polygon, tileRect geom.Rect) {
	r.nodes.Reset()
	for i := range r.tileBuffer {
		r.tileBuffer[i] = 0
	}

	stride := r.tileBounds.W
	fullWidth := r.tileBounds.W * r.antialias.Factor()

	for _, path := range polygon.Paths {
		buildNodes(r.nodes, path, tileRect, r.xform, r.antialias, fullWidth)
	}

	dirty := renderScanlines(r.nodes, r.tileBuffer, stride, stride, r.antialias)
	if dirty.Empty() {
		return
	}

	data := r.tileBuffer[dirty.X+stride*dirty.Y:]
	dirty.X += tileRect.X
	dirty.Y += tileRect.Y

	final := dirty.Intersection(tileRect)
	if final.Empty() {
		return
	}

	r.callback(Tile{
		Bounds:    final,
		Stride:    stride,
		Data:      data,
		antialias: r.antialias,
	})
}
