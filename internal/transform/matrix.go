// Package transform provides the affine transformation matrix used to place
// a polygon into the coordinate space the rasterizer walks.
package transform

import "math"

// Matrix3 is a row-major 3x3 matrix used as a 2D affine transform. The third
// row is implicitly (0, 0, 1); callers never set it.
//
//	v00 v01 v02
//	v10 v11 v12
//	v20 v21 v22
//
// A point is transformed as the matrix times a column vector (x, y, 1):
//
//	x' = v00*x + v01*y + v02
//	y' = v10*x + v11*y + v12
type Matrix3 struct {
	V00, V01, V02 float64
	V10, V11, V12 float64
	V20, V21, V22 float64
}

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		V00: 1, V11: 1, V22: 1,
	}
}

// Rotation returns a matrix that rotates points by angle degrees about the origin.
func Rotation(degrees float64) Matrix3 {
	a := degrees * math.Pi / 180.0
	c, s := math.Cos(a), math.Sin(a)
	m := Identity()
	m.V00, m.V01 = c, s
	m.V10, m.V11 = -s, c
	return m
}

// Translation returns a matrix that translates points by (x, y).
func Translation(x, y float64) Matrix3 {
	m := Identity()
	m.V02, m.V12 = x, y
	return m
}

// Scale returns a matrix that scales points by (x, y).
func Scale(x, y float64) Matrix3 {
	m := Identity()
	m.V00, m.V11 = x, y
	return m
}

// Mul returns the conventional matrix product m1 * m2.
func Mul(m1, m2 Matrix3) Matrix3 {
	return Matrix3{
		V00: m1.V00*m2.V00 + m1.V01*m2.V10 + m1.V02*m2.V20,
		V01: m1.V00*m2.V01 + m1.V01*m2.V11 + m1.V02*m2.V21,
		V02: m1.V00*m2.V02 + m1.V01*m2.V12 + m1.V02*m2.V22,

		V10: m1.V10*m2.V00 + m1.V11*m2.V10 + m1.V12*m2.V20,
		V11: m1.V10*m2.V01 + m1.V11*m2.V11 + m1.V12*m2.V21,
		V12: m1.V10*m2.V02 + m1.V11*m2.V12 + m1.V12*m2.V22,

		V20: m1.V20*m2.V00 + m1.V21*m2.V10 + m1.V22*m2.V20,
		V21: m1.V20*m2.V01 + m1.V21*m2.V11 + m1.V22*m2.V21,
		V22: m1.V20*m2.V02 + m1.V21*m2.V12 + m1.V22*m2.V22,
	}
}

// Mul returns the composition of m followed by other: m.Mul(other) applies
// m first, then other. Since Apply treats a matrix as M*p, that composed
// transform is other*m, so this is equivalent to Mul(other, m).
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	return Mul(other, m)
}

// Apply transforms the point (x, y) and returns the result.
func (m Matrix3) Apply(x, y float64) (float64, float64) {
	return m.V00*x + m.V01*y + m.V02, m.V10*x + m.V11*y + m.V12
}
