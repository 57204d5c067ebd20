/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/arkenpdf/pdfcs/colorspace"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/transform"
)

// TextSeqItem is one element of a TJ array: either a run of bytes to
// show, or a number that adjusts horizontal position before the next
// run (units of 1/1000 text space, positive moves left in writing
// direction).
type TextSeqItem struct {
	Bytes []byte
	Delta float64
	IsDelta bool
}

// TextSeq is the operand of Tj/TJ/'/" after normalizing: Tj's single
// string and '/"'s is each wrapped as a one-item TextSeq of bytes, TJ's
// array is taken as-is.
type TextSeq []TextSeqItem

// Device is the external rendering sink the interpreter drives. A
// host implements it; this module never draws anything itself — see
// spec.md §6.
type Device interface {
	// SetCTM is called whenever `cm` changes the current transformation matrix.
	SetCTM(ctm transform.Matrix)

	// BeginPage/EndPage bracket one page's content stream.
	BeginPage(pageLabel string, ctm transform.Matrix)
	EndPage(pageLabel string)

	// BeginFigure/EndFigure bracket a Form XObject or inline image's
	// recursive rendering.
	BeginFigure(name string, bbox transform.Rect, matrix transform.Matrix)
	EndFigure(name string)

	// PaintPath is called by every path-painting operator with the
	// accumulated path and the paint flags ISO 32000-1 Table 60 gives it.
	PaintPath(gs GraphicState, stroke, fill, evenOdd bool, path Path)

	// RenderString is called once per Tj/TJ/'/" operator, carrying the
	// full TextSeq (strings and numeric deltas interleaved as given),
	// the active text and graphic state, and the tokenizer's
	// instruction index for that operator.
	RenderString(ts TextState, seq TextSeq, nonstrokeCS colorspace.ColorSpace, gs GraphicState, instructionIndex int)

	// RenderImage is called for an inline image or an Image XObject.
	RenderImage(name string, image *InlineImage)

	// DoTag/BeginTag/EndTag implement the marked-content operators.
	DoTag(tag string, props core.PdfObject)
	BeginTag(tag string, props core.PdfObject)
	EndTag()
}
