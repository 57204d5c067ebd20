/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/arkenpdf/pdfcs/colorspace"
	"github.com/arkenpdf/pdfcs/font"
	"github.com/arkenpdf/pdfcs/transform"
)

// Dash is a line dash pattern: an array of on/off lengths plus a phase.
type Dash struct {
	Pattern []float64
	Phase   float64
}

// Color is a device-independent color value: as many components as
// its color space declares.
type Color struct {
	Components []float64
}

// GraphicState is the subset of the PDF graphics state that `q`/`Q`
// save and restore (ISO 32000-1 §8.4). It is always copied by value,
// never aliased, so that `q` followed by mutation never perturbs the
// saved copy.
type GraphicState struct {
	LineWidth       float64
	LineCap         int
	LineJoin        int
	MiterLimit      float64
	Dash            Dash
	RenderingIntent string
	Flatness        float64

	StrokeColor     Color
	StrokeColorSpace colorspace.ColorSpace
	FillColor       Color
	FillColorSpace  colorspace.ColorSpace
}

// NewGraphicState returns the default graphics state: all numeric
// fields zero and colors unset, per spec.md §3 (which overrides ISO
// 32000-1 Table 52's linewidth-1/miterlimit-10 device defaults) and
// pdfminer's own PDFGraphicState.__init__ (linewidth=0, miterlimit=None).
func NewGraphicState() GraphicState {
	return GraphicState{}
}

// Copy returns an independent copy of gs.
func (gs GraphicState) Copy() GraphicState {
	cp := gs
	cp.Dash.Pattern = append([]float64{}, gs.Dash.Pattern...)
	cp.StrokeColor.Components = append([]float64{}, gs.StrokeColor.Components...)
	cp.FillColor.Components = append([]float64{}, gs.FillColor.Components...)
	return cp
}

// TextState is the PDF text state (ISO 32000-1 §9.3): the parameters
// that persist across text-showing operators within and beyond a
// BT/ET block, plus the text and text-line matrices that reset at
// every BT.
type TextState struct {
	Font         font.Font
	FontSize     float64
	CharSpace    float64
	WordSpace    float64
	Scaling      float64 // Tz, percent; 100 is unscaled.
	Leading      float64
	RenderMode   int
	Rise         float64

	Matrix     transform.Matrix
	LineMatrix transform.Point
}

// NewTextState returns the default text state: unscaled (Tz=100),
// fill-mode rendering (Tr=0).
func NewTextState() TextState {
	return TextState{Scaling: 100}
}

// Reset sets Matrix to the identity and LineMatrix to the origin, as
// BT does.
func (ts *TextState) Reset() {
	ts.Matrix = transform.Identity()
	ts.LineMatrix = transform.Point{}
}

// Copy returns an independent copy of ts.
func (ts TextState) Copy() TextState {
	return ts
}

// savedState is one q/Q stack frame: the CTM, text state, and graphic
// state at the time of the matching q.
type savedState struct {
	CTM          transform.Matrix
	TextState    TextState
	GraphicState GraphicState
}
