/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/arkenpdf/pdfcs/common"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/font"
	"github.com/arkenpdf/pdfcs/transform"
)

// defaultMaxFormDepth bounds Form XObject recursion. Grounded on the
// teacher's extractor form-stack depth guard.
const defaultMaxFormDepth = 20

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithStrict puts the interpreter in strict mode: malformed content
// raises an *Error and aborts the page instead of logging and
// continuing. See spec.md §7.
func WithStrict(strict bool) Option {
	return func(in *Interpreter) { in.strict = strict }
}

// WithMaxFormDepth overrides the Form XObject recursion guard.
func WithMaxFormDepth(depth int) Option {
	return func(in *Interpreter) { in.maxFormDepth = depth }
}

// Interpreter executes a page or Form XObject's content-stream
// operations against a Device, maintaining the graphics and text state
// machines spec.md §3/§4 define. One Interpreter is built per
// page/Form invocation; child interpreters share the ResourceManager
// and Device but not the state stack.
type Interpreter struct {
	device Device
	rm     *font.ResourceManager

	strict       bool
	maxFormDepth int
	formDepth    int

	ctm          transform.Matrix
	textState    TextState
	graphicState GraphicState
	gstack       []savedState

	argStack  []core.PdfObject
	curPath   Path
	strokeCS  string
	nonstroke string

	resources *Resources

	inText bool
}

// NewInterpreter returns an Interpreter rendering into device, using
// rm to resolve fonts and CMaps.
func NewInterpreter(device Device, rm *font.ResourceManager, resources *Resources, opts ...Option) *Interpreter {
	in := &Interpreter{
		device:       device,
		rm:           rm,
		resources:    resources,
		maxFormDepth: defaultMaxFormDepth,
		ctm:          transform.Identity(),
		textState:    NewTextState(),
		graphicState: NewGraphicState(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// fail reports err: in strict mode it is returned to the caller and
// aborts the remaining operations; in lenient mode it is logged and
// execution continues.
func (in *Interpreter) fail(err error) error {
	if in.strict {
		return err
	}
	common.Log.Debug("content stream error (continuing): %v", err)
	return nil
}

// Render executes ops against the interpreter's state and device.
func (in *Interpreter) Render(ops Operations) error {
	for _, op := range ops {
		if err := in.execute(op); err != nil {
			return err
		}
	}
	return nil
}

// pop returns the last n operands off argStack, deepest first, or
// reports a StackUnderflow error if fewer than n are present.
func (in *Interpreter) pop(op string, n int) ([]core.PdfObject, error) {
	if len(in.argStack) < n {
		return nil, newError(StackUnderflowKind, op, "need %d operands, have %d", n, len(in.argStack))
	}
	start := len(in.argStack) - n
	args := in.argStack[start:]
	in.argStack = in.argStack[:start]
	return args, nil
}

func floats(op string, args []core.PdfObject) ([]float64, error) {
	vals, err := core.GetNumbersAsFloat(args)
	if err != nil {
		return nil, newError(TypeErrorKind, op, "%v", err)
	}
	return vals, nil
}

// execute dispatches a single parsed operation, per the arity table of
// spec.md §4.3/§9 (a static table, not reflection).
func (in *Interpreter) execute(op *Operation) error {
	// Tj/TJ/'/" consume the tokenizer's instruction index; every other
	// operator ignores it. Params already hold the operands the
	// tokenizer collected since the previous operator, so we push them
	// onto argStack first and let each handler pop its own arity.
	if op.Operand != "BI" {
		in.argStack = op.Params
	}

	var err error
	switch op.Operand {
	case "q":
		in.gstack = append(in.gstack, savedState{CTM: in.ctm, TextState: in.textState.Copy(), GraphicState: in.graphicState.Copy()})
	case "Q":
		if len(in.gstack) == 0 {
			common.Log.Debug("Q with empty graphics state stack, ignoring")
			break
		}
		top := in.gstack[len(in.gstack)-1]
		in.gstack = in.gstack[:len(in.gstack)-1]
		in.ctm, in.textState, in.graphicState = top.CTM, top.TextState, top.GraphicState
		in.device.SetCTM(in.ctm)
	case "cm":
		err = in.opCM()
	case "w":
		err = in.opSetFloat("w", &in.graphicState.LineWidth)
	case "J":
		err = in.opSetInt("J", &in.graphicState.LineCap)
	case "j":
		err = in.opSetInt("j", &in.graphicState.LineJoin)
	case "M":
		err = in.opSetFloat("M", &in.graphicState.MiterLimit)
	case "d":
		err = in.opDash()
	case "ri":
		err = in.opSetIntent()
	case "i":
		err = in.opSetFloat("i", &in.graphicState.Flatness)
	case "gs":
		_, err = in.pop("gs", 1)
	case "m":
		err = in.opPathOp("m", 2, func(v []float64) { in.curPath.Move(v[0], v[1]) })
	case "l":
		err = in.opPathOp("l", 2, func(v []float64) { in.curPath.Line(v[0], v[1]) })
	case "c":
		err = in.opPathOp("c", 6, func(v []float64) { in.curPath.Curve3(v[0], v[1], v[2], v[3], v[4], v[5]) })
	case "v":
		err = in.opPathOp("v", 4, func(v []float64) { in.curPath.CurveV(v[0], v[1], v[2], v[3]) })
	case "y":
		err = in.opPathOp("y", 4, func(v []float64) { in.curPath.CurveY(v[0], v[1], v[2], v[3]) })
	case "h":
		in.curPath.Close()
	case "re":
		err = in.opPathOp("re", 4, func(v []float64) { in.curPath.Rect(v[0], v[1], v[2], v[3]) })
	case "S", "s", "f", "f*", "B", "B*", "b", "b*", "n":
		in.opPaint(op.Operand)
	case "F":
		// Obsolete fill alias, kept as a true no-op rather than an
		// alias for "f" — it neither paints nor clears the path.
	case "W", "W*":
		// Clipping is accepted and ignored — no clip model in this interpreter.
	case "CS":
		err = in.opSetColorSpace("CS", &in.strokeCS)
	case "cs":
		err = in.opSetColorSpace("cs", &in.nonstroke)
	case "SC":
		err = in.opSetColor("SC", in.strokeCS, &in.graphicState.StrokeColor)
	case "sc":
		err = in.opSetColor("sc", in.nonstroke, &in.graphicState.FillColor)
	case "SCN":
		err = in.opSetColorN("SCN", in.strokeCS, &in.graphicState.StrokeColor)
	case "scn":
		err = in.opSetColorN("scn", in.nonstroke, &in.graphicState.FillColor)
	case "G":
		err = in.opGray("G", true)
	case "g":
		err = in.opGray("g", false)
	case "RG":
		err = in.opRGB("RG", true)
	case "rg":
		err = in.opRGB("rg", false)
	case "K":
		err = in.opCMYK("K", true)
	case "k":
		err = in.opCMYK("k", false)
	case "sh":
		_, err = in.pop("sh", 1)
	case "BT":
		in.inText = true
		in.textState.Reset()
	case "ET":
		in.inText = false
	case "BX", "EX":
		// Compatibility brackets: no-op.
	case "MP":
		err = in.opMarkedContent("MP", false)
	case "DP":
		err = in.opMarkedContent("DP", true)
	case "BMC":
		err = in.opMarkedContentBegin("BMC", false)
	case "BDC":
		err = in.opMarkedContentBegin("BDC", true)
	case "EMC":
		in.device.EndTag()
	case "Tc":
		err = in.opSetFloat("Tc", &in.textState.CharSpace)
	case "Tw":
		err = in.opSetFloat("Tw", &in.textState.WordSpace)
	case "Tz":
		err = in.opSetFloat("Tz", &in.textState.Scaling)
	case "TL":
		err = in.opSetLeading()
	case "Tf":
		err = in.opTf()
	case "Tr":
		err = in.opSetInt("Tr", &in.textState.RenderMode)
	case "Ts":
		err = in.opSetFloat("Ts", &in.textState.Rise)
	case "Td":
		err = in.opTd("Td", false)
	case "TD":
		err = in.opTd("TD", true)
	case "Tm":
		err = in.opTm()
	case "T*":
		in.opTStar()
	case "Tj":
		err = in.opTj(op.InstructionIndex)
	case "TJ":
		err = in.opTJ(op.InstructionIndex)
	case "'":
		err = in.opQuote(op.InstructionIndex)
	case "\"":
		err = in.opDoubleQuote(op.InstructionIndex)
	case "BI":
		err = in.opInlineImage(op)
	case "Do":
		err = in.opDo()
	default:
		if in.strict {
			err = newError(UnknownOperatorKind, op.Operand, "no handler registered")
		} else {
			common.Log.Debug("unknown operator %q, skipping", op.Operand)
			in.argStack = nil
		}
	}

	if err != nil {
		return in.fail(err)
	}
	return nil
}
