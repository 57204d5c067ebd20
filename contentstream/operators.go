/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/arkenpdf/pdfcs/common"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/transform"
)

func (in *Interpreter) opCM() error {
	args, err := in.pop("cm", 6)
	if err != nil {
		return err
	}
	v, err := floats("cm", args)
	if err != nil {
		return err
	}
	m := transform.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])
	in.ctm = transform.Mult(m, in.ctm)
	in.device.SetCTM(in.ctm)
	return nil
}

func (in *Interpreter) opSetFloat(op string, dst *float64) error {
	args, err := in.pop(op, 1)
	if err != nil {
		return err
	}
	v, err := core.GetNumberAsFloat(args[0])
	if err != nil {
		return newError(TypeErrorKind, op, "%v", err)
	}
	*dst = v
	return nil
}

func (in *Interpreter) opSetInt(op string, dst *int) error {
	args, err := in.pop(op, 1)
	if err != nil {
		return err
	}
	v, err := core.GetNumberAsFloat(args[0])
	if err != nil {
		return newError(TypeErrorKind, op, "%v", err)
	}
	*dst = int(v)
	return nil
}

func (in *Interpreter) opDash() error {
	args, err := in.pop("d", 2)
	if err != nil {
		return err
	}
	arr, ok := core.GetArray(args[0])
	if !ok {
		return newError(TypeErrorKind, "d", "dash pattern must be an array")
	}
	pattern, err := arr.ToFloat64Slice()
	if err != nil {
		return newError(TypeErrorKind, "d", "%v", err)
	}
	phase, err := core.GetNumberAsFloat(args[1])
	if err != nil {
		return newError(TypeErrorKind, "d", "%v", err)
	}
	in.graphicState.Dash = Dash{Pattern: pattern, Phase: phase}
	return nil
}

func (in *Interpreter) opSetIntent() error {
	args, err := in.pop("ri", 1)
	if err != nil {
		return err
	}
	name, ok := core.GetNameVal(args[0])
	if !ok {
		return newError(TypeErrorKind, "ri", "rendering intent must be a name")
	}
	in.graphicState.RenderingIntent = name
	return nil
}

func (in *Interpreter) opPathOp(op string, n int, apply func([]float64)) error {
	args, err := in.pop(op, n)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	apply(v)
	return nil
}

func (in *Interpreter) opPaint(op string) {
	rule := paintRules[op]
	if rule.Close {
		in.curPath.Close()
	}
	in.device.PaintPath(in.graphicState.Copy(), rule.Stroke, rule.Fill, rule.EvenOdd, in.curPath)
	in.curPath.Clear()
}

func (in *Interpreter) opSetColorSpace(op string, dst *string) error {
	args, err := in.pop(op, 1)
	if err != nil {
		return err
	}
	name, ok := core.GetNameVal(args[0])
	if !ok {
		return newError(TypeErrorKind, op, "color space operand must be a name")
	}
	*dst = name
	return nil
}

// componentCount resolves the number of operands SC/SCN must consume
// for the active color space, falling back to 1 component when the
// space is unset or unknown (spec.md §4.5 lenient default).
func (in *Interpreter) componentCount(name string) int {
	if name == "" {
		return 1
	}
	cs, ok := in.resources.ColorSpaces.Get(name)
	if !ok {
		return 1
	}
	return cs.Components
}

func (in *Interpreter) opSetColor(op, csName string, dst *Color) error {
	n := in.componentCount(csName)
	args, err := in.pop(op, n)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	dst.Components = v
	return nil
}

// opSetColorN handles SCN/scn. When the last operand is a name (a
// pattern), only that name is consumed and the current color is left
// unchanged; patterns are otherwise out of scope. Without a trailing
// name it behaves exactly like SC/sc.
func (in *Interpreter) opSetColorN(op, csName string, dst *Color) error {
	if len(in.argStack) > 0 {
		if _, ok := core.GetNameVal(in.argStack[len(in.argStack)-1]); ok {
			in.argStack = in.argStack[:len(in.argStack)-1]
			return nil
		}
	}
	return in.opSetColor(op, csName, dst)
}

func (in *Interpreter) opGray(op string, stroke bool) error {
	args, err := in.pop(op, 1)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	in.setColorAndSpace(stroke, "DeviceGray", v)
	return nil
}

func (in *Interpreter) opRGB(op string, stroke bool) error {
	args, err := in.pop(op, 3)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	in.setColorAndSpace(stroke, "DeviceRGB", v)
	return nil
}

func (in *Interpreter) opCMYK(op string, stroke bool) error {
	args, err := in.pop(op, 4)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	in.setColorAndSpace(stroke, "DeviceCMYK", v)
	return nil
}

func (in *Interpreter) setColorAndSpace(stroke bool, csName string, v []float64) {
	if stroke {
		in.strokeCS = csName
		in.graphicState.StrokeColor = Color{Components: v}
	} else {
		in.nonstroke = csName
		in.graphicState.FillColor = Color{Components: v}
	}
}

func (in *Interpreter) opMarkedContent(op string, withProps bool) error {
	n := 1
	if withProps {
		n = 2
	}
	args, err := in.pop(op, n)
	if err != nil {
		return err
	}
	tag, _ := core.GetNameVal(args[0])
	var props core.PdfObject
	if withProps {
		props = args[1]
	}
	in.device.DoTag(tag, props)
	return nil
}

func (in *Interpreter) opMarkedContentBegin(op string, withProps bool) error {
	n := 1
	if withProps {
		n = 2
	}
	args, err := in.pop(op, n)
	if err != nil {
		return err
	}
	tag, _ := core.GetNameVal(args[0])
	var props core.PdfObject
	if withProps {
		props = args[1]
	}
	in.device.BeginTag(tag, props)
	return nil
}

func (in *Interpreter) opSetLeading() error {
	args, err := in.pop("TL", 1)
	if err != nil {
		return err
	}
	v, err := core.GetNumberAsFloat(args[0])
	if err != nil {
		return newError(TypeErrorKind, "TL", "%v", err)
	}
	// TL stores the negated leading; T* below folds that sign back in.
	in.textState.Leading = -v
	return nil
}

func (in *Interpreter) opTf() error {
	args, err := in.pop("Tf", 2)
	if err != nil {
		return err
	}
	name, ok := core.GetNameVal(args[0])
	if !ok {
		return newError(TypeErrorKind, "Tf", "font operand must be a name")
	}
	size, err := core.GetNumberAsFloat(args[1])
	if err != nil {
		return newError(TypeErrorKind, "Tf", "%v", err)
	}
	f, ok := in.resources.GetFont(name)
	if !ok {
		if in.strict {
			return newError(ResourceErrorKind, "Tf", "font %q not in resources", name)
		}
		common.Log.Debug("font %q not in resources, leaving text state's font unset", name)
	}
	in.textState.Font = f
	in.textState.FontSize = size
	return nil
}

func (in *Interpreter) opTd(op string, setLeading bool) error {
	args, err := in.pop(op, 2)
	if err != nil {
		return err
	}
	v, err := floats(op, args)
	if err != nil {
		return err
	}
	tx, ty := v[0], v[1]
	if setLeading {
		in.textState.Leading = ty
	}
	a, b, c, d, e, f := in.textState.Matrix.Components()
	newE := tx*a + ty*c + e
	newF := tx*b + ty*d + f
	m := transform.NewMatrix(a, b, c, d, newE, newF)
	in.textState.Matrix = m
	in.textState.LineMatrix = transform.Point{}
	return nil
}

func (in *Interpreter) opTm() error {
	args, err := in.pop("Tm", 6)
	if err != nil {
		return err
	}
	v, err := floats("Tm", args)
	if err != nil {
		return err
	}
	m := transform.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5])
	in.textState.Matrix = m
	in.textState.LineMatrix = transform.Point{}
	return nil
}

func (in *Interpreter) opTStar() {
	a, b, c, d, e, f := in.textState.Matrix.Components()
	newE := in.textState.Leading*c + e
	newF := in.textState.Leading*d + f
	in.textState.Matrix = transform.NewMatrix(a, b, c, d, newE, newF)
}

func (in *Interpreter) opTj(instructionIndex int) error {
	args, err := in.pop("Tj", 1)
	if err != nil {
		return err
	}
	str, ok := args[0].(*core.PdfObjectString)
	if !ok {
		return newError(TypeErrorKind, "Tj", "operand must be a string")
	}
	in.showText(TextSeq{{Bytes: str.Bytes()}}, instructionIndex)
	return nil
}

func (in *Interpreter) opTJ(instructionIndex int) error {
	args, err := in.pop("TJ", 1)
	if err != nil {
		return err
	}
	arr, ok := core.GetArray(args[0])
	if !ok {
		return newError(TypeErrorKind, "TJ", "operand must be an array")
	}
	seq := make(TextSeq, 0, arr.Len())
	for _, el := range arr.Elements() {
		switch v := el.(type) {
		case *core.PdfObjectString:
			seq = append(seq, TextSeqItem{Bytes: v.Bytes()})
		case *core.PdfObjectInteger:
			seq = append(seq, TextSeqItem{Delta: float64(*v), IsDelta: true})
		case *core.PdfObjectFloat:
			seq = append(seq, TextSeqItem{Delta: float64(*v), IsDelta: true})
		default:
			if in.strict {
				return newError(TypeErrorKind, "TJ", "array element must be a string or number")
			}
		}
	}
	in.showText(seq, instructionIndex)
	return nil
}

func (in *Interpreter) opQuote(instructionIndex int) error {
	args, err := in.pop("'", 1)
	if err != nil {
		return err
	}
	str, ok := args[0].(*core.PdfObjectString)
	if !ok {
		return newError(TypeErrorKind, "'", "operand must be a string")
	}
	in.opTStar()
	in.showText(TextSeq{{Bytes: str.Bytes()}}, instructionIndex)
	return nil
}

func (in *Interpreter) opDoubleQuote(instructionIndex int) error {
	args, err := in.pop("\"", 3)
	if err != nil {
		return err
	}
	aw, err := core.GetNumberAsFloat(args[0])
	if err != nil {
		return newError(TypeErrorKind, "\"", "%v", err)
	}
	ac, err := core.GetNumberAsFloat(args[1])
	if err != nil {
		return newError(TypeErrorKind, "\"", "%v", err)
	}
	str, ok := args[2].(*core.PdfObjectString)
	if !ok {
		return newError(TypeErrorKind, "\"", "third operand must be a string")
	}
	in.textState.WordSpace = aw
	in.textState.CharSpace = ac
	in.opTStar()
	in.showText(TextSeq{{Bytes: str.Bytes()}}, instructionIndex)
	return nil
}

// showText advances the text matrix by each numeric item's horizontal
// displacement, tx = -delta/1000 * Tfs * Th (the TJ-number term of ISO
// 32000-1 §9.4.3; glyph widths, Tc and Tw are not applied here), and
// then sends the whole seq to the device in one RenderString call,
// carrying the text state as so advanced.
func (in *Interpreter) showText(seq TextSeq, instructionIndex int) {
	nonstrokeCS, _ := in.resources.ColorSpaces.Get(in.nonstroke)
	th := in.textState.Scaling / 100
	for _, item := range seq {
		if item.IsDelta {
			tx := -item.Delta / 1000 * in.textState.FontSize * th
			in.textState.Matrix = transform.Mult(transform.Translation(tx, 0), in.textState.Matrix)
			continue
		}
	}
	in.device.RenderString(in.textState.Copy(), seq, nonstrokeCS, in.graphicState.Copy(), instructionIndex)
}

func (in *Interpreter) opInlineImage(op *Operation) error {
	if len(op.Params) != 1 {
		return newError(ParseErrorKind, "BI", "malformed inline image operation")
	}
	img, ok := op.Params[0].(*InlineImage)
	if !ok {
		return newError(TypeErrorKind, "BI", "BI operand must be an inline image")
	}
	// pdfminer's do_EI only renders when both W and H are present;
	// a dimensionless inline image is malformed and skipped rather
	// than handed to the device as if it were valid.
	if img.Width == nil || img.Height == nil {
		common.Log.Debug("inline image missing /W or /H, skipping")
		return nil
	}
	// Bracketed like any other figure (executeImage's XObject-image
	// path does the same) so a Device tracking nesting depth via
	// BeginFigure/EndFigure stays in sync for inline images too.
	bbox := transform.NewRect(0, 0, 1, 1)
	matrix := transform.Identity()
	in.device.BeginFigure("", bbox, matrix)
	in.device.RenderImage("", img)
	in.device.EndFigure("")
	return nil
}

func (in *Interpreter) opDo() error {
	args, err := in.pop("Do", 1)
	if err != nil {
		return err
	}
	name, ok := core.GetNameVal(args[0])
	if !ok {
		return newError(TypeErrorKind, "Do", "operand must be a name")
	}
	xobj, ok := in.resources.GetXObject(name)
	if !ok {
		if in.strict {
			return newError(ResourceErrorKind, "Do", "xobject %q not in resources", name)
		}
		common.Log.Debug("xobject %q not in resources, skipping Do", name)
		return nil
	}
	return in.executeXObject(name, xobj)
}
