package transform

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIdentityLeavesPointUnchanged(t *testing.T) {
	m := Identity()
	x, y := m.Apply(3, -4)
	if !almostEqual(x, 3) || !almostEqual(y, -4) {
		t.Errorf("identity transform changed point: got (%v, %v)", x, y)
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(10, -5)
	x, y := m.Apply(1, 1)
	if !almostEqual(x, 11) || !almostEqual(y, -4) {
		t.Errorf("got (%v, %v), want (11, -4)", x, y)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)
	x, y := m.Apply(4, 5)
	if !almostEqual(x, 8) || !almostEqual(y, 15) {
		t.Errorf("got (%v, %v), want (8, 15)", x, y)
	}
}

func TestRotation90(t *testing.T) {
	m := Rotation(90)
	x, y := m.Apply(1, 0)
	if !almostEqual(x, 0) || !almostEqual(y, -1) {
		t.Errorf("got (%v, %v), want (0, -1)", x, y)
	}
}

func TestMulComposesLeftToRight(t *testing.T) {
	// translate then scale: (x+1)*2
	combined := Translation(1, 0).Mul(Scale(2, 1))
	x, _ := combined.Apply(3, 0)
	if !almostEqual(x, 8) {
		t.Errorf("got x=%v, want 8", x)
	}
}

func TestMulIdentityIsNoOp(t *testing.T) {
	r := Rotation(37)
	combined := r.Mul(Identity())
	x1, y1 := r.Apply(5, 6)
	x2, y2 := combined.Apply(5, 6)
	if !almostEqual(x1, x2) || !almostEqual(y1, y2) {
		t.Errorf("multiplying by identity changed result")
	}
}
