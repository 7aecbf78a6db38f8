package rasterizer

import (
	"math/rand"
	"testing"

	"prettypoly/internal/geom"
)

func TestAddEdgeHorizontalDiscarded(t *testing.T) {
	nt := newNodeTable(8, 8)
	nt.addEdge(0, 3, 10, 3, 100)
	for y := 0; y < 8; y++ {
		if nt.counts[y] != 0 {
			t.Errorf("horizontal edge produced a node on scanline %d", y)
		}
	}
}

func TestAddEdgeHalfOpenAtSharedVertex(t *testing.T) {
	// Two edges meeting at y=5: one ending there, one starting there.
	// Together they should contribute exactly one node at y=5 (from the edge
	// starting there), not zero or two.
	nt := newNodeTable(10, 8)
	nt.addEdge(0, 0, 5, 5, 100)
	nt.addEdge(5, 5, 10, 10, 100)
	if nt.counts[5] != 1 {
		t.Errorf("expected exactly 1 node at shared vertex scanline, got %d", nt.counts[5])
	}
}

func TestAddEdgeClampsFullyLeft(t *testing.T) {
	nt := newNodeTable(5, 4)
	nt.addEdge(-10, 0, -5, 4, 50)
	for y := 0; y < 4; y++ {
		if nt.counts[y] != 1 || nt.nodes[y][0] != 0 {
			t.Errorf("scanline %d: expected single node at 0, got counts=%d nodes=%v", y, nt.counts[y], nt.nodes[y][:nt.counts[y]])
		}
	}
}

func TestAddEdgeClampsFullyRight(t *testing.T) {
	nt := newNodeTable(5, 4)
	nt.addEdge(60, 0, 70, 4, 50)
	for y := 0; y < 4; y++ {
		if nt.counts[y] != 1 || nt.nodes[y][0] != 50 {
			t.Errorf("scanline %d: expected single node at 50, got counts=%d nodes=%v", y, nt.counts[y], nt.nodes[y][:nt.counts[y]])
		}
	}
}

// Property 1: for every scanline of every tile, the number of nodes placed
// is even, across many random polygons.
func TestParityAcrossRandomPolygons(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 3 + rng.Intn(8)
		points := make([]geom.Point, n)
		for i := range points {
			points[i] = geom.Point{X: float64(rng.Intn(40) - 5), Y: float64(rng.Intn(40) - 5)}
		}
		path := geom.NewPath(points)

		nt := newNodeTable(32, 64)
		for i := 0; i < len(path.Points); i++ {
			start, end := path.Edge(i)
			nt.addEdge(int(start.X), int(start.Y), int(end.X), int(end.Y), 40)
		}
		for y, c := range nt.counts {
			if c%2 != 0 {
				t.Fatalf("trial %d scanline %d has odd node count %d", trial, y, c)
			}
		}
	}
}
