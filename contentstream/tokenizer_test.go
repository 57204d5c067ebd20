/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkenpdf/pdfcs/core"
)

func TestParseOperandsAndOperator(t *testing.T) {
	ops, err := NewTokenizer("1 2.5 /Name (lit) <48656c6c6f> [1 2] << /K /V >> true false null cm").Parse()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	op := ops[0]
	require.Equal(t, "cm", op.Operand)
	require.Len(t, op.Params, 10)

	i, ok := op.Params[0].(*core.PdfObjectInteger)
	require.True(t, ok)
	require.EqualValues(t, 1, *i)

	f, ok := op.Params[1].(*core.PdfObjectFloat)
	require.True(t, ok)
	require.EqualValues(t, 2.5, *f)

	name, ok := op.Params[2].(*core.PdfObjectName)
	require.True(t, ok)
	require.Equal(t, "Name", string(*name))

	str, ok := op.Params[3].(*core.PdfObjectString)
	require.True(t, ok)
	require.Equal(t, "lit", str.Str())

	hex, ok := op.Params[4].(*core.PdfObjectString)
	require.True(t, ok)
	require.Equal(t, "Hello", hex.Str())

	arr, ok := op.Params[5].(*core.PdfObjectArray)
	require.True(t, ok)
	require.Equal(t, 2, arr.Len())

	dict, ok := op.Params[6].(*core.PdfObjectDictionary)
	require.True(t, ok)
	require.Equal(t, 1, dict.Len())

	b, ok := op.Params[7].(*core.PdfObjectBool)
	require.True(t, ok)
	require.True(t, bool(*b))

	b2, ok := op.Params[8].(*core.PdfObjectBool)
	require.True(t, ok)
	require.False(t, bool(*b2))
}

func TestInstructionIndexIncreasesPerOperator(t *testing.T) {
	ops, err := NewTokenizer("q 1 w Q").Parse()
	require.NoError(t, err)
	require.Len(t, ops, 3)
	require.Equal(t, 1, ops[0].InstructionIndex)
	require.Equal(t, 2, ops[1].InstructionIndex)
	require.Equal(t, 3, ops[2].InstructionIndex)
}

func TestNameHexEscape(t *testing.T) {
	ops, err := NewTokenizer("/A#42C cm").Parse()
	require.NoError(t, err)
	name := ops[0].Params[0].(*core.PdfObjectName)
	require.Equal(t, "ABC", string(*name))
}

func TestLiteralStringEscapes(t *testing.T) {
	ops, err := NewTokenizer(`(line\n\(nested\)\061) cm`).Parse()
	require.NoError(t, err)
	str := ops[0].Params[0].(*core.PdfObjectString)
	require.Equal(t, "line\n(nested)1", str.Str())
}

func TestUnknownOperatorLenientStillTokenizes(t *testing.T) {
	ops, err := NewTokenizer("1 2 Zz 3 w").Parse()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, "Zz", ops[0].Operand)
	require.Equal(t, "w", ops[1].Operand)
}

func TestUnknownOperatorStrictRaises(t *testing.T) {
	_, err := NewTokenizer("1 2 Zz").SetStrict(true).Parse()
	require.Error(t, err)
}

func TestBalanced(t *testing.T) {
	ops, err := NewTokenizer("q q Q Q").Parse()
	require.NoError(t, err)
	require.True(t, ops.Balanced())

	ops2, err := NewTokenizer("q Q Q").Parse()
	require.NoError(t, err)
	require.False(t, ops2.Balanced())
}
