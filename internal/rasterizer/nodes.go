package rasterizer

// nodeTable records, for each supersampled scanline in the current tile, the
// x-intersections of polygon edges crossing it. It is reused across tiles
// within one Render call; Reset clears it between tiles.
type nodeTable struct {
	nodes   [][]int32 // nodes[y] holds up to cap(nodes[y]) intersections, in insertion order
	counts  []int
	dropped uint64 // intersections dropped because their scanline was full, across the table's lifetime
}

func newNodeTable(maxScanlines, maxIntersections int) *nodeTable {
	nodes := make([][]int32, maxScanlines)
	for y := range nodes {
		nodes[y] = make([]int32, maxIntersections)
	}
	return &nodeTable{
		nodes:  nodes,
		counts: make([]int, maxScanlines),
	}
}

// Reset clears every scanline's intersection count, readying the table for
// the next tile. It does not reallocate.
func (t *nodeTable) Reset() {
	for i := range t.counts {
		t.counts[i] = 0
	}
}

// append adds x to scanline y's intersection list, dropping it and counting
// the drop if the scanline is already at capacity.
func (t *nodeTable) append(y int, x int32) {
	if t.counts[y] >= len(t.nodes[y]) {
		t.dropped++
		return
	}
	t.nodes[y][t.counts[y]] = x
	t.counts[y]++
}

// sign returns 1, 0, or -1 according to the sign of v.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// addEdge is the core primitive of the edge builder: it walks one polygon
// edge, already transformed into tile-local supersample-space integer
// coordinates, and records its x-intersection on every scanline it crosses.
//
// width is the full supersampled tile width (W); x-intersections are clamped
// to [0, width]. Edges are processed bottom-up (after swapping endpoints if
// necessary) and contribute to the half-open scanline range [minY, maxY) —
// never their top endpoint — which is what keeps the total intersection
// count on any scanline even: two edges meeting at a shared vertex each
// contribute exactly one of the two scanlines at that vertex, never both.
func (t *nodeTable) addEdge(startX, startY, endX, endY int, width int) {
	sx, sy, ex, ey := startX, startY, endX, endY
	if ey < sy {
		sx, ex = ex, sx
		sy, ey = ey, sy
	}

	maxScanlines := len(t.nodes)
	if ey < 0 || sy >= maxScanlines || sy == ey {
		return
	}

	y := max(0, sy)
	count := min(maxScanlines, ey) - y

	if max(sx, ex) <= 0 {
		for ; count > 0; count-- {
			t.append(y, 0)
			y++
		}
		return
	}
	if min(sx, ex) >= width {
		for ; count > 0; count-- {
			t.append(y, int32(width))
			y++
		}
		return
	}

	x := sx
	e := 0
	xinc := sign(ex - sx)
	einc := abs(ex-sx) + 1
	dy := ey - sy

	// Fast-forward past scanlines above the tile: recover the x and error
	// state that the loop below would have reached, in one division,
	// instead of iterating through every discarded scanline.
	if sy < 0 {
		e = einc * -sy
		xjump := e / dy
		e -= dy * xjump
		x += xinc * xjump
	}

	for ; count > 0; count-- {
		for e > dy {
			e -= dy
			x += xinc
		}
		nx := clampInt(x, 0, width)
		t.append(y, int32(nx))
		y++
		e += einc
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
