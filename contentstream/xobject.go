/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bytes"

	"github.com/arkenpdf/pdfcs/common"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/transform"
)

// executeXObject dispatches `Do` by the XObject's /Subtype: Form
// recurses a child Interpreter over the stream's content, scoped to
// its own CTM/resources; Image renders directly; anything else is
// ignored (spec.md §4.8).
func (in *Interpreter) executeXObject(name string, xobj *Stream) error {
	subtype, _ := core.GetNameVal(xobj.Dict.Get("Subtype"))
	switch subtype {
	case "Form":
		return in.executeForm(name, xobj)
	case "Image":
		return in.executeImage(name, xobj)
	default:
		common.Log.Debug("ignoring XObject %q of unhandled subtype %q", name, subtype)
		return nil
	}
}

func (in *Interpreter) executeForm(name string, xobj *Stream) error {
	if in.formDepth >= in.maxFormDepth {
		return newError(ResourceErrorKind, "Do", "form XObject recursion exceeds depth %d", in.maxFormDepth)
	}

	matrix := transform.Identity()
	if arr, ok := core.GetArray(xobj.Dict.Get("Matrix")); ok && arr.Len() == 6 {
		if v, err := arr.ToFloat64Slice(); err == nil {
			matrix = transform.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])
		}
	}

	bbox := transform.Rect{}
	if arr, ok := core.GetArray(xobj.Dict.Get("BBox")); ok && arr.Len() == 4 {
		if v, err := arr.ToFloat64Slice(); err == nil {
			bbox = transform.NewRect(v[0], v[1], v[2], v[3])
		}
	}

	// PDF 1.1 legacy: a Form XObject without its own /Resources
	// inherits the invoking content stream's resources.
	resDict, ok := core.GetDict(xobj.Dict.Get("Resources"))
	var resources *Resources
	if ok {
		resources = BindResources(resDict, in.rm)
	} else {
		resources = in.resources
	}

	childCTM := transform.Mult(matrix, in.ctm)

	in.device.BeginFigure(name, bbox, matrix)

	child := NewInterpreter(in.device, in.rm, resources, WithStrict(in.strict), WithMaxFormDepth(in.maxFormDepth))
	child.formDepth = in.formDepth + 1
	child.ctm = childCTM
	child.device.SetCTM(childCTM)

	tok := NewTokenizerReader(bytes.NewReader(xobj.Data)).SetStrict(in.strict)
	ops, err := tok.Parse()
	if err != nil {
		in.device.EndFigure(name)
		return err
	}
	if err := child.Render(ops); err != nil {
		in.device.EndFigure(name)
		return err
	}

	in.device.EndFigure(name)
	in.device.SetCTM(in.ctm)
	return nil
}

func (in *Interpreter) executeImage(name string, xobj *Stream) error {
	bbox := transform.NewRect(0, 0, 1, 1)
	matrix := transform.Identity()
	in.device.BeginFigure(name, bbox, matrix)
	in.device.RenderImage(name, &InlineImage{
		Width:  xobj.Dict.Get("Width"),
		Height: xobj.Dict.Get("Height"),
		Data:   xobj.Data,
	})
	in.device.EndFigure(name)
	return nil
}
