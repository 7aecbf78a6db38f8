package shapes

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRectangleFourCorners(t *testing.T) {
	poly := Rectangle(10, 20, 30, 40)
	if len(poly.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(poly.Paths))
	}
	pts := poly.Paths[0].Points
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	want := [][2]float64{{10, 20}, {40, 20}, {40, 60}, {10, 60}}
	for i, w := range want {
		if !almostEqual(pts[i].X, w[0]) || !almostEqual(pts[i].Y, w[1]) {
			t.Errorf("point %d = (%v,%v), want (%v,%v)", i, pts[i].X, pts[i].Y, w[0], w[1])
		}
	}
}

func TestStrokedRectangleHasOuterAndInner(t *testing.T) {
	poly := StrokedRectangle(0, 0, 10, 10, 2)
	if len(poly.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(poly.Paths))
	}
	outer, inner := poly.Paths[0].Points, poly.Paths[1].Points
	if !almostEqual(outer[0].X, 0) || !almostEqual(outer[0].Y, 0) {
		t.Errorf("outer origin = %+v", outer[0])
	}
	if !almostEqual(inner[0].X, 2) || !almostEqual(inner[0].Y, 2) {
		t.Errorf("inner origin = %+v", inner[0])
	}
}

func TestRoundedRectangleSquareCornersMatchPlainRect(t *testing.T) {
	rounded := RoundedRectangle(0, 0, 10, 10, 0, 0, 0, 0)
	plain := Rectangle(0, 0, 10, 10)
	rp, pp := rounded.Paths[0].Points, plain.Paths[0].Points
	if len(rp) != len(pp) {
		t.Fatalf("point counts differ: %d vs %d", len(rp), len(pp))
	}
	for i := range rp {
		if !almostEqual(rp[i].X, pp[i].X) || !almostEqual(rp[i].Y, pp[i].Y) {
			t.Errorf("point %d differs: %+v vs %+v", i, rp[i], pp[i])
		}
	}
}

func TestRoundedRectangleRoundedCornerStaysInsideRectangle(t *testing.T) {
	poly := RoundedRectangle(0, 0, 20, 20, 5, 0, 0, 0)
	for _, p := range poly.Paths[0].Points {
		if p.X < -1e-9 || p.X > 20+1e-9 || p.Y < -1e-9 || p.Y > 20+1e-9 {
			t.Errorf("point %+v escapes the rectangle bound", p)
		}
	}
}

func TestRegularPolygonVertexCount(t *testing.T) {
	poly := Regular(0, 0, 10, 6)
	if n := len(poly.Paths[0].Points); n != 6 {
		t.Errorf("expected 6 points, got %d", n)
	}
}

func TestRegularPolygonVerticesAtRadius(t *testing.T) {
	r := 10.0
	poly := Regular(0, 0, r, 8)
	for _, p := range poly.Paths[0].Points {
		dist := math.Hypot(p.X, p.Y)
		if !almostEqual(dist, r) {
			t.Errorf("vertex %+v at distance %v, want %v", p, dist, r)
		}
	}
}

func TestCircleSidesFloorsAtEight(t *testing.T) {
	poly := Circle(0, 0, 2)
	if n := len(poly.Paths[0].Points); n != 8 {
		t.Errorf("expected 8 points for a small circle, got %d", n)
	}
}

func TestCircleSidesScalesWithRadius(t *testing.T) {
	poly := Circle(0, 0, 50)
	if n := len(poly.Paths[0].Points); n != 50 {
		t.Errorf("expected 50 points, got %d", n)
	}
}

func TestStarAlternatesRadii(t *testing.T) {
	poly := Star(0, 0, 5, 10, 4)
	pts := poly.Paths[0].Points
	if len(pts) != 10 {
		t.Fatalf("expected 10 points, got %d", len(pts))
	}
	for i, p := range pts {
		dist := math.Hypot(p.X, p.Y)
		want := 10.0
		if i%2 != 0 {
			want = 4.0
		}
		if !almostEqual(dist, want) {
			t.Errorf("point %d at distance %v, want %v", i, dist, want)
		}
	}
}

func TestGearVertexCount(t *testing.T) {
	poly := Gear(0, 0, 12, 10, 8)
	if n := len(poly.Paths[0].Points); n != 48 {
		t.Errorf("expected 48 points (2 per flank, 2 flanks per tooth, 12 teeth), got %d", n)
	}
}

func TestGearStaysBetweenRadii(t *testing.T) {
	poly := Gear(0, 0, 10, 10, 8)
	for _, p := range poly.Paths[0].Points {
		dist := math.Hypot(p.X, p.Y)
		if dist < 8-1e-9 || dist > 10+1e-9 {
			t.Errorf("vertex %+v at distance %v, outside [8,10]", p, dist)
		}
	}
}

func TestLineIsPerpendicularToAxis(t *testing.T) {
	poly := Line(0, 0, 10, 0, 4)
	pts := poly.Paths[0].Points
	if len(pts) != 4 {
		t.Fatalf("expected 4 points, got %d", len(pts))
	}
	for _, p := range pts {
		if p.Y != 2 && p.Y != -2 {
			t.Errorf("point %+v has unexpected y offset for a horizontal line", p)
		}
	}
}

func TestPieStartsAtCenter(t *testing.T) {
	poly := Pie(5, 5, 10, 0, 90)
	pts := poly.Paths[0].Points
	if !almostEqual(pts[0].X, 5) || !almostEqual(pts[0].Y, 5) {
		t.Errorf("first point = %+v, want center (5,5)", pts[0])
	}
	if len(pts) < 2 {
		t.Fatalf("expected at least 2 points, got %d", len(pts))
	}
}

func TestArcRingStaysBetweenRadii(t *testing.T) {
	poly := Arc(0, 0, 10, 0, 180, 3)
	for _, p := range poly.Paths[0].Points {
		dist := math.Hypot(p.X, p.Y)
		if dist < 7-1e-9 || dist > 10+1e-9 {
			t.Errorf("vertex %+v at distance %v, outside [7,10]", p, dist)
		}
	}
}
