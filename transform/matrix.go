/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package transform holds the affine geometry types shared by the
// content-stream engine and its device sink: matrices, points and
// rectangles.
package transform

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine transform in the PDF convention:
//
//	[x' y' 1] = [x y 1] * | a b 0 |
//	                      | c d 0 |
//	                      | e f 1 |
//
// It is the CTM, the text matrix `Tm`, or the text line matrix `Tlm`
// depending on where it is used.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// NewMatrix builds a matrix from its six components in row-major reading
// order, the same order operands appear in `cm`/`Tm`.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translation returns a matrix that translates by tx, ty.
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Mult returns the matrix that first applies m, then applies other —
// the PDF pre-multiplication convention used to fold a `cm` operand
// into the current CTM: `mult(P, Q)` applies P first, then Q.
func Mult(m, other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Concat folds other into m in place: m = mult(other, m). This is the
// operation `cm` performs on the CTM (other applied first).
func (m *Matrix) Concat(other Matrix) {
	*m = Mult(other, *m)
}

// Transform applies m to the point (x, y).
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return x*m.A + y*m.C + m.E, x*m.B + y*m.D + m.F
}

// Translate returns m translated by tx, ty in m's own space: mult(Translation(tx,ty), m).
func (m Matrix) Translate(tx, ty float64) Matrix {
	return Mult(Translation(tx, ty), m)
}

// Components returns the six matrix entries in (a,b,c,d,e,f) order.
func (m Matrix) Components() (a, b, c, d, e, f float64) {
	return m.A, m.B, m.C, m.D, m.E, m.F
}

// Inverse returns the inverse of m, or ok=false if m is singular.
func (m Matrix) Inverse() (inv Matrix, ok bool) {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	aI, bI := m.D/det, -m.B/det
	cI, dI := -m.C/det, m.A/det
	eI := -(m.E*aI + m.F*cI)
	fI := -(m.E*bI + m.F*dI)
	return Matrix{A: aI, B: bI, C: cI, D: dI, E: eI, F: fI}, true
}

// String renders m as "(a,b,c,d,e,f)", the notation spec tables use.
func (m Matrix) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g,%g,%g)", m.A, m.B, m.C, m.D, m.E, m.F)
}
