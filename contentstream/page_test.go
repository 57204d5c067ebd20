/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/font"
	"github.com/arkenpdf/pdfcs/transform"
)

func TestInitialCTMRotateTable(t *testing.T) {
	box := transform.NewRect(0, 0, 612, 792)

	require.Equal(t, transform.NewMatrix(1, 0, 0, 1, 0, 0), initialCTM(box, 0))
	require.Equal(t, transform.NewMatrix(0, -1, 1, 0, 0, 612), initialCTM(box, 90))
	require.Equal(t, transform.NewMatrix(-1, 0, 0, -1, 612, 792), initialCTM(box, 180))
	require.Equal(t, transform.NewMatrix(0, 1, -1, 0, 792, 0), initialCTM(box, 270))
}

func TestInitialCTMNormalizesRotate(t *testing.T) {
	box := transform.NewRect(0, 0, 612, 792)
	require.Equal(t, initialCTM(box, 90), initialCTM(box, -270))
	require.Equal(t, initialCTM(box, 90), initialCTM(box, 450))
}

func TestProcessPageRotate90_S6(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	page := &Page{
		Label:    "p1",
		MediaBox: transform.NewRect(0, 0, 612, 792),
		Rotate:   90,
	}
	require.NoError(t, in.ProcessPage(page))

	want := transform.NewMatrix(0, -1, 1, 0, 0, 612)
	require.Equal(t, want, in.ctm)
	require.Equal(t, []transform.Matrix{want}, dev.ctms)
	require.Equal(t, []string{"p1"}, dev.beginPages)
}

func TestFormXObjectScenario_S5(t *testing.T) {
	in, dev := newTestInterpreter(t, nil)
	formDict := core.MakeDict()
	formDict.Set("Subtype", core.MakeName("Form"))
	formDict.Set("Matrix", core.MakeArrayFromFloats([]float64{2, 0, 0, 2, 10, 20}))
	formDict.Set("BBox", core.MakeArrayFromFloats([]float64{0, 0, 100, 100}))
	xobjDict := core.MakeDict()
	xobjDict.Set("X1", &Stream{Dict: formDict, Data: []byte("1 1 m 2 2 l S")})
	resDict := core.MakeDict()
	resDict.Set("XObject", xobjDict)
	rm := font.NewResourceManager(stubRegistry{}, false)
	in.resources = BindResources(resDict, rm)

	ops := mustParse(t, "/X1 Do")
	require.NoError(t, in.Render(ops))

	require.Len(t, dev.figures, 1)
	require.Equal(t, "X1", dev.figures[0].name)
	require.Equal(t, transform.NewRect(0, 0, 100, 100), dev.figures[0].bbox)
	wantMatrix := transform.NewMatrix(2, 0, 0, 2, 10, 20)
	require.Equal(t, wantMatrix, dev.figures[0].matrix)

	wantChildCTM := transform.Mult(wantMatrix, in.ctm)
	require.Contains(t, dev.ctms, wantChildCTM)
	require.Len(t, dev.paints, 1)
}
