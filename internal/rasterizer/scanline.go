package rasterizer

import (
	"sort"

	"prettypoly/internal/geom"
)

// renderScanlines consumes every recorded scanline in nodes, pairs its
// x-intersections even-odd into spans, and accumulates coverage into data
// (a stride-wide, row-major output buffer with one padding byte at the end).
// It returns the dirty bound — the smallest output-local rectangle enclosing
// every byte it touched with a non-degenerate span.
func renderScanlines(nodes *nodeTable, data []byte, stride int, outputWidth int, antialias AntialiasLevel) geom.Rect {
	a := uint(antialias)
	factor := antialias.Factor()
	mask := factor - 1

	minX := outputWidth
	maxX := 0
	minY := 0
	maxY := -1

	for y := 0; y < len(nodes.counts); y++ {
		count := nodes.counts[y]
		if count == 0 {
			if y == minY {
				minY++
			}
			continue
		}

		row := nodes.nodes[y][:count]
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })

		rowOffset := (y >> a) * stride
		renderedAny := false

		for i := 0; i+1 < count; i += 2 {
			sx, ex := int(row[i]), int(row[i+1])
			if sx == ex {
				continue
			}
			renderedAny = true
			if v := (ex - 1) >> a; v > maxX {
				maxX = v
			}

			if antialias != AntialiasNone {
				ax := sx >> a
				aex := ex >> a
				if ax < minX {
					minX = ax
				}
				if ax == aex {
					data[rowOffset+ax] += byte(ex - sx)
					continue
				}
				data[rowOffset+ax] += byte(factor - (sx & mask))
				for ax++; ax < aex; ax++ {
					data[rowOffset+ax] += byte(factor)
				}
				// May add 0 to the byte just past the row's last pixel;
				// the tile buffer carries one padding byte for exactly this.
				data[rowOffset+aex] += byte(ex & mask)
			} else {
				if sx < minX {
					minX = sx
				}
				for x := sx; x < ex; x++ {
					data[rowOffset+x]++
				}
			}
		}

		if renderedAny {
			maxY = y
		} else if y == minY {
			minY++
		}
	}

	outMinY := minY >> a
	outMaxY := maxY >> a

	width := 0
	if maxX >= minX {
		width = maxX + 1 - minX
	}
	height := 0
	if outMaxY >= outMinY {
		height = outMaxY + 1 - outMinY
	}

	return geom.Rect{X: minX, Y: outMinY, W: width, H: height}
}
