package geom

import (
	"testing"

	"prettypoly/internal/transform"
)

func TestRectEmpty(t *testing.T) {
	if !(Rect{W: 0, H: 5}).Empty() {
		t.Error("zero width rect should be empty")
	}
	if (Rect{W: 4, H: 5}).Empty() {
		t.Error("4x5 rect should not be empty")
	}
}

func TestRectIntersection(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, W: 10, H: 10}
	r2 := Rect{X: 5, Y: 5, W: 10, H: 10}
	got := r1.Intersection(r2)
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRectIntersectionDisjoint(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, W: 1, H: 1}
	r2 := Rect{X: 100, Y: 100, W: 1, H: 1}
	if !r1.Intersection(r2).Empty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestRectMerge(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, W: 5, H: 5}
	r2 := Rect{X: 10, Y: 10, W: 5, H: 5}
	got := r1.Merge(r2)
	want := Rect{X: 0, Y: 0, W: 15, H: 15}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRectTransformIdentity(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	got := r.Transform(transform.Identity())
	if got != r {
		t.Errorf("identity transform changed rect: got %+v, want %+v", got, r)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	_, ok := Path{}.Bounds()
	if ok {
		t.Error("expected no bounds for empty path")
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	b, ok := p.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Rect{X: 0, Y: 0, W: 4, H: 4}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestPathEdgeWrapsAround(t *testing.T) {
	p := NewPath([]Point{{0, 0}, {1, 0}, {1, 1}})
	start, end := p.Edge(2)
	if start != (Point{1, 1}) || end != (Point{0, 0}) {
		t.Errorf("closing edge wrong: got (%+v -> %+v)", start, end)
	}
}

func TestPolygonEmpty(t *testing.T) {
	if !(Polygon{}).Empty() {
		t.Error("zero-path polygon should be empty")
	}
	p := NewPolygon(Path{})
	if !p.Empty() {
		t.Error("polygon with only zero-point paths should be empty")
	}
	p = p.AddPath(NewPath([]Point{{0, 0}, {1, 0}, {1, 1}}))
	if p.Empty() {
		t.Error("polygon with a real path should not be empty")
	}
}

func TestPolygonMergeKeepsBothPathSets(t *testing.T) {
	outer := NewPolygon(NewPath([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}))
	hole := NewPolygon(NewPath([]Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}))
	merged := outer.Merge(hole)
	if len(merged.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(merged.Paths))
	}
}

func TestPolygonBoundsUnion(t *testing.T) {
	p := NewPolygon(
		NewPath([]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}),
		NewPath([]Point{{10, 10}, {14, 10}, {14, 14}, {10, 14}}),
	)
	b, ok := p.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	want := Rect{X: 0, Y: 0, W: 14, H: 14}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}
