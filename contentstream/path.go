/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

// SegmentKind tags which PathSegment variant is populated.
type SegmentKind int

const (
	// SegMove is `m x y`.
	SegMove SegmentKind = iota
	// SegLine is `l x y`.
	SegLine
	// SegCurve3 is `c x1 y1 x2 y2 x3 y3`: both control points given.
	SegCurve3
	// SegCurveV is `v x2 y2 x3 y3`: first control point is the current point.
	SegCurveV
	// SegCurveY is `y x1 y1 x3 y3`: second control point is the endpoint.
	SegCurveY
	// SegClose is `h`: close the current subpath.
	SegClose
)

// PathSegment is one element of a path under construction: a move,
// line, one of the three Bézier curve operators, or a close.
type PathSegment struct {
	Kind                   SegmentKind
	X, Y                   float64
	X1, Y1, X2, Y2, X3, Y3 float64
}

// Path accumulates segments between the last painting operator and
// the next one. Every paint operator clears it.
type Path struct {
	Segments []PathSegment

	// startX, startY is the current subpath's starting point, needed
	// by `h` and kept in sync by `m`.
	startX, startY float64
	curX, curY     float64
}

// Move begins a new subpath at (x, y).
func (p *Path) Move(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Kind: SegMove, X: x, Y: y})
	p.startX, p.startY = x, y
	p.curX, p.curY = x, y
}

// Line appends a straight segment to (x, y).
func (p *Path) Line(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Kind: SegLine, X: x, Y: y})
	p.curX, p.curY = x, y
}

// Curve3 appends a cubic Bézier with both control points given.
func (p *Path) Curve3(x1, y1, x2, y2, x3, y3 float64) {
	p.Segments = append(p.Segments, PathSegment{Kind: SegCurve3, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
	p.curX, p.curY = x3, y3
}

// CurveV appends a cubic Bézier whose first control point is the
// current point.
func (p *Path) CurveV(x2, y2, x3, y3 float64) {
	p.Segments = append(p.Segments, PathSegment{Kind: SegCurveV, X2: x2, Y2: y2, X3: x3, Y3: y3})
	p.curX, p.curY = x3, y3
}

// CurveY appends a cubic Bézier whose second control point is the
// endpoint.
func (p *Path) CurveY(x1, y1, x3, y3 float64) {
	p.Segments = append(p.Segments, PathSegment{Kind: SegCurveY, X1: x1, Y1: y1, X3: x3, Y3: y3})
	p.curX, p.curY = x3, y3
}

// Close closes the current subpath, returning the current point to
// its start.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Kind: SegClose})
	p.curX, p.curY = p.startX, p.startY
}

// Rect appends the five-segment subpath `re x y w h` expands to:
// m(x,y); l(x+w,y); l(x+w,y+h); l(x,y+h); h.
func (p *Path) Rect(x, y, w, h float64) {
	p.Move(x, y)
	p.Line(x+w, y)
	p.Line(x+w, y+h)
	p.Line(x, y+h)
	p.Close()
}

// Clear empties the path, as every painting operator does after use.
func (p *Path) Clear() {
	p.Segments = nil
	p.startX, p.startY = 0, 0
	p.curX, p.curY = 0, 0
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Segments) == 0
}

// paintRule describes one painting operator's behavior: whether it
// strokes, fills, uses the even-odd fill rule, and closes the path
// before painting. ISO 32000-1 Table 60.
type paintRule struct {
	Stroke, Fill, EvenOdd, Close bool
}

// F is deliberately absent here: unlike every other entry, it does not
// paint or clear the current path at all (see execute's "F" case).
var paintRules = map[string]paintRule{
	"S":  {Stroke: true},
	"s":  {Stroke: true, Close: true},
	"f":  {Fill: true},
	"f*": {Fill: true, EvenOdd: true},
	"B":  {Stroke: true, Fill: true},
	"B*": {Stroke: true, Fill: true, EvenOdd: true},
	"b":  {Stroke: true, Fill: true, Close: true},
	"b*": {Stroke: true, Fill: true, EvenOdd: true, Close: true},
	"n":  {},
}
