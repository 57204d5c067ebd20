/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package transform

// Point is a pair of reals in 2D space.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Transform returns p mapped through m.
func (p Point) Transform(m Matrix) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle given by two opposite corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect returns the rectangle spanning (x0,y0)-(x1,y1).
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}
