/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkenpdf/pdfcs/colorspace"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/font"
	"github.com/arkenpdf/pdfcs/transform"
)

// stubRegistry resolves every font/CMap request to a trivial stand-in,
// since decoding an actual font program is explicitly out of scope.
type stubRegistry struct{}

func (stubRegistry) NewFont(string, *core.PdfObjectDictionary) (font.Font, error) {
	return stubFont{}, nil
}

func (stubRegistry) NewCMap(string) (font.CMap, error) {
	return nil, font.ErrCMapNotFound
}

type stubFont struct{}

func (stubFont) DecodeString(b []byte) []font.Glyph { return nil }

// recordingDevice captures every callback it receives, for assertions.
type recordingDevice struct {
	ctms        []transform.Matrix
	paints      []paintCall
	strings     []stringCall
	figures     []figureCall
	figureOrder []string
	beginPages  []string
}

type paintCall struct {
	gs                    GraphicState
	stroke, fill, evenOdd bool
	path                  Path
}

type stringCall struct {
	ts               TextState
	seq              TextSeq
	instructionIndex int
}

type figureCall struct {
	name   string
	bbox   transform.Rect
	matrix transform.Matrix
}

func (d *recordingDevice) SetCTM(ctm transform.Matrix) { d.ctms = append(d.ctms, ctm) }
func (d *recordingDevice) BeginPage(label string, ctm transform.Matrix) {
	d.beginPages = append(d.beginPages, label)
}
func (d *recordingDevice) EndPage(string) {}
func (d *recordingDevice) BeginFigure(name string, bbox transform.Rect, matrix transform.Matrix) {
	d.figures = append(d.figures, figureCall{name, bbox, matrix})
	d.figureOrder = append(d.figureOrder, "begin")
}
func (d *recordingDevice) EndFigure(string) { d.figureOrder = append(d.figureOrder, "end") }
func (d *recordingDevice) PaintPath(gs GraphicState, stroke, fill, evenOdd bool, path Path) {
	d.paints = append(d.paints, paintCall{gs, stroke, fill, evenOdd, path})
}
func (d *recordingDevice) RenderString(ts TextState, seq TextSeq, _ colorspace.ColorSpace, gs GraphicState, idx int) {
	d.strings = append(d.strings, stringCall{ts, seq, idx})
}
func (d *recordingDevice) RenderImage(string, *InlineImage)       {}
func (d *recordingDevice) DoTag(string, core.PdfObject)           {}
func (d *recordingDevice) BeginTag(string, core.PdfObject)        {}
func (d *recordingDevice) EndTag()                                {}

func newTestInterpreter(t *testing.T, fonts map[string]*core.PdfObjectDictionary) (*Interpreter, *recordingDevice) {
	t.Helper()
	rm := font.NewResourceManager(stubRegistry{}, false)
	resDict := core.MakeDict()
	if len(fonts) > 0 {
		fontDict := core.MakeDict()
		for name, spec := range fonts {
			fontDict.Set(core.PdfObjectName(name), spec)
		}
		resDict.Set("Font", fontDict)
	}
	resources := BindResources(resDict, rm)
	dev := &recordingDevice{}
	in := NewInterpreter(dev, rm, resources)
	return in, dev
}

func mustParse(t *testing.T, content string) Operations {
	t.Helper()
	ops, err := NewTokenizer(content).Parse()
	require.NoError(t, err)
	return ops
}

func TestRectangleStroke_S1(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	ops := mustParse(t, "1 w 10 20 30 40 re S")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.paints, 1)
	p := dev.paints[0]
	require.True(t, p.stroke)
	require.False(t, p.fill)
	require.False(t, p.evenOdd)
	require.Equal(t, 1.0, p.gs.LineWidth)
	require.Equal(t, []PathSegment{
		{Kind: SegMove, X: 10, Y: 20},
		{Kind: SegLine, X: 40, Y: 20},
		{Kind: SegLine, X: 40, Y: 60},
		{Kind: SegLine, X: 10, Y: 60},
		{Kind: SegClose},
	}, p.path.Segments)
}

func TestNestedSave_S2(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	ops := mustParse(t, "0 0 m 1 1 l q 2 0 0 2 0 0 cm q 0.5 w Q S")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.paints, 1)
	require.Equal(t, 0.0, dev.paints[0].gs.LineWidth)
	// Only the inner q is closed; the outer q's frame is still saved.
	require.Len(t, in.gstack, 1)
}

func TestColorSpaceArity_Property6(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)
	ops := mustParse(t, "/DeviceRGB cs 0.1 0.2 0.3 scn")
	require.NoError(t, in.Render(ops))
	require.Equal(t, []float64{0.1, 0.2, 0.3}, in.graphicState.FillColor.Components)
	require.Empty(t, in.argStack)

	in2, _ := newTestInterpreter(t, nil)
	ops2 := mustParse(t, "/DeviceCMYK cs 0.1 0.2 0.3 0.4 scn")
	require.NoError(t, in2.Render(ops2))
	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, in2.graphicState.FillColor.Components)
}

func TestTextTranslationComposition_Property4(t *testing.T) {
	ops := mustParse(t, "BT 3 4 Td 5 6 Td ET")
	in, _ := newTestInterpreter(t, nil)
	require.NoError(t, in.Render(ops))

	ops2 := mustParse(t, "BT 8 10 Td ET")
	in2, _ := newTestInterpreter(t, nil)
	require.NoError(t, in2.Render(ops2))

	require.InDelta(t, in2.textState.Matrix.E, in.textState.Matrix.E, 1e-9)
	require.InDelta(t, in2.textState.Matrix.F, in.textState.Matrix.F, 1e-9)
}

func TestTDSetsLeading_Property5(t *testing.T) {
	ops := mustParse(t, "BT 1 2 TD ET")
	in, _ := newTestInterpreter(t, nil)
	require.NoError(t, in.Render(ops))
	require.Equal(t, 2.0, in.textState.Leading)
}

func TestBalancedSaveRestore_Property1(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)
	ops := mustParse(t, "q q q Q Q Q")
	require.NoError(t, in.Render(ops))
	require.Empty(t, in.gstack)
	require.Empty(t, in.curPath.Segments)
	require.Empty(t, in.argStack)
}

func TestObsoleteFIsTrueNoOp(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	ops := mustParse(t, "0 0 m 1 1 l F")
	require.NoError(t, in.Render(ops))

	require.Empty(t, dev.paints)
	require.Len(t, in.curPath.Segments, 2)
}

func TestQOnEmptyStackIsNoOp(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	ops := mustParse(t, "Q 1 w")
	require.NoError(t, in.Render(ops))
	require.Equal(t, 1.0, in.graphicState.LineWidth)
	require.Empty(t, dev.ctms)
}

func TestTextPositioning_S3(t *testing.T) {
	f1 := core.MakeDict()
	f1.Set("Subtype", core.MakeName("Type1"))
	in, dev := newTestInterpreter(t, map[string]*core.PdfObjectDictionary{"F1": f1})

	ops := mustParse(t, "BT /F1 12 Tf 72 720 Td (Hi) Tj ET")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.strings, 1)
	call := dev.strings[0]
	require.Equal(t, transform.NewMatrix(1, 0, 0, 1, 72, 720), call.ts.Matrix)
	require.Equal(t, 12.0, call.ts.FontSize)
	// instruction_index is the Tj token's position among emitted operators.
	require.Equal(t, lastOperatorIndex(ops, "Tj"), call.instructionIndex)
}

func TestTJMixed_S4(t *testing.T) {
	f1 := core.MakeDict()
	f1.Set("Subtype", core.MakeName("Type1"))
	in, dev := newTestInterpreter(t, map[string]*core.PdfObjectDictionary{"F1": f1})

	ops := mustParse(t, `BT /F1 10 Tf [(A) -120 (B)] TJ ET`)
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.strings, 1)
	seq := dev.strings[0].seq
	require.Len(t, seq, 3)
	require.Equal(t, "A", string(seq[0].Bytes))
	require.True(t, seq[1].IsDelta)
	require.Equal(t, -120.0, seq[1].Delta)
	require.Equal(t, "B", string(seq[2].Bytes))
}

func TestInlineImageASCII85Terminator_Property7(t *testing.T) {
	ops := mustParse(t, "BI /F /A85 ID abc~> EI")
	require.Len(t, ops, 1)
	require.Equal(t, "BI", ops[0].Operand)
	img, ok := ops[0].Params[0].(*InlineImage)
	require.True(t, ok)
	require.Equal(t, []byte("abc~>"), img.Data)
}

// TestInlineImageASCII85FollowedByRealOperator guards against the
// trailing "EI" keyword ISO 32000-1 §8.9.7 always requires after
// ASCII85 inline-image data getting retokenized as a second, spurious
// operation: a real operator immediately after the image's "EI" must
// be the very next parsed Operation, not "EI" itself.
func TestInlineImageASCII85FollowedByRealOperator(t *testing.T) {
	ops := mustParse(t, "BI /F /A85 ID abc~> EI 1 w")
	require.Len(t, ops, 2)
	require.Equal(t, "BI", ops[0].Operand)
	require.Equal(t, "w", ops[1].Operand)
}

func TestInlineImageBracketedByFigureCallbacks(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	ops := mustParse(t, "BI /W 1 /H 1 /BPC 8 /CS /G ID \x01 EI")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.figures, 1)
	require.Equal(t, "", dev.figures[0].name)
	require.Equal(t, transform.NewRect(0, 0, 1, 1), dev.figures[0].bbox)
	require.Equal(t, transform.Identity(), dev.figures[0].matrix)
	require.Equal(t, []string{"begin", "end"}, dev.figureOrder)
}

func TestXObjectCTM_Property8(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	formDict := core.MakeDict()
	formDict.Set("Subtype", core.MakeName("Form"))
	formDict.Set("Matrix", core.MakeArrayFromFloats([]float64{2, 0, 0, 2, 5, 5}))
	formDict.Set("BBox", core.MakeArrayFromFloats([]float64{0, 0, 10, 10}))
	xobjDict := core.MakeDict()
	xobjDict.Set("XObject1", &Stream{Dict: formDict, Data: []byte("1 w")})
	resDict := core.MakeDict()
	resDict.Set("XObject", xobjDict)
	rm := font.NewResourceManager(stubRegistry{}, false)
	in.resources = BindResources(resDict, rm)

	ops := mustParse(t, "/XObject1 Do")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.figures, 1)
	require.Equal(t, transform.NewMatrix(2, 0, 0, 2, 5, 5), dev.figures[0].matrix)

	expectedChildCTM := transform.Mult(transform.NewMatrix(2, 0, 0, 2, 5, 5), in.ctm)
	require.Contains(t, dev.ctms, expectedChildCTM)
}

func TestUnknownOperatorLenientIsSkippedAtDispatch(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)
	ops := mustParse(t, "1 2 Zz 3 w")
	require.NoError(t, in.Render(ops))
	require.Equal(t, 3.0, in.graphicState.LineWidth)
}

func TestUnknownOperatorStrictAborts(t *testing.T) {
	in, _ := newTestInterpreter(t, nil)
	in.strict = true
	ops := mustParse(t, "1 2 Zz")
	require.Error(t, in.Render(ops))
}

func lastOperatorIndex(ops Operations, operand string) int {
	idx := -1
	for _, op := range ops {
		if op.Operand == operand {
			idx = op.InstructionIndex
		}
	}
	return idx
}
