/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package tracedevice is a reference contentstream.Device that writes
// one line per callback to an io.Writer, except RenderString, which
// writes one line per TextSeq item. It renders nothing — no
// glyph outlines, no rasterized paths — it exists to make the
// interpreter's callback sequence observable, the way a conformance
// or debugging harness would use it.
package tracedevice

import (
	"fmt"
	"io"

	"github.com/arkenpdf/pdfcs/colorspace"
	"github.com/arkenpdf/pdfcs/contentstream"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/transform"
)

// Device writes a textual trace of every callback it receives to Out.
type Device struct {
	Out   io.Writer
	depth int
}

// New returns a Device tracing to w.
func New(w io.Writer) *Device {
	return &Device{Out: w}
}

func (d *Device) indent() string {
	s := ""
	for i := 0; i < d.depth; i++ {
		s += "  "
	}
	return s
}

func (d *Device) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.Out, d.indent()+format+"\n", args...)
}

// SetCTM implements contentstream.Device.
func (d *Device) SetCTM(ctm transform.Matrix) {
	d.printf("ctm %s", ctm.String())
}

// BeginPage implements contentstream.Device.
func (d *Device) BeginPage(label string, ctm transform.Matrix) {
	d.printf("begin-page %s ctm=%s", label, ctm.String())
}

// EndPage implements contentstream.Device.
func (d *Device) EndPage(label string) {
	d.printf("end-page %s", label)
}

// BeginFigure implements contentstream.Device.
func (d *Device) BeginFigure(name string, bbox transform.Rect, matrix transform.Matrix) {
	d.printf("begin-figure %s bbox=(%g,%g,%g,%g) matrix=%s", name, bbox.X0, bbox.Y0, bbox.X1, bbox.Y1, matrix.String())
	d.depth++
}

// EndFigure implements contentstream.Device.
func (d *Device) EndFigure(name string) {
	d.depth--
	d.printf("end-figure %s", name)
}

// PaintPath implements contentstream.Device.
func (d *Device) PaintPath(gs contentstream.GraphicState, stroke, fill, evenOdd bool, path contentstream.Path) {
	d.printf("paint-path stroke=%v fill=%v evenodd=%v segments=%d", stroke, fill, evenOdd, len(path.Segments))
}

// RenderString implements contentstream.Device.
func (d *Device) RenderString(ts contentstream.TextState, seq contentstream.TextSeq, ncs colorspace.ColorSpace, gs contentstream.GraphicState, instructionIndex int) {
	for _, item := range seq {
		if item.IsDelta {
			d.printf("text-delta %g", item.Delta)
			continue
		}
		d.printf("render-string #%d %q", instructionIndex, string(item.Bytes))
	}
}

// RenderImage implements contentstream.Device.
func (d *Device) RenderImage(name string, image *contentstream.InlineImage) {
	d.printf("render-image %s bytes=%d", name, len(image.Data))
}

// DoTag implements contentstream.Device.
func (d *Device) DoTag(tag string, props core.PdfObject) {
	d.printf("tag %s", tag)
}

// BeginTag implements contentstream.Device.
func (d *Device) BeginTag(tag string, props core.PdfObject) {
	d.printf("begin-tag %s", tag)
	d.depth++
}

// EndTag implements contentstream.Device.
func (d *Device) EndTag() {
	d.depth--
	d.printf("end-tag")
}
