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

func TestInlineImageEIDelimitedStrippedTrailingNewline(t *testing.T) {
	ops, err := NewTokenizer("BI /W 2 /H 2 /BPC 8 /CS /G ID \x01\x02\x03\x04\nEI").Parse()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	img := ops[0].Params[0].(*InlineImage)
	require.Equal(t, []byte{1, 2, 3, 4}, img.Data)
	w, _ := core.GetIntVal(img.Width)
	require.Equal(t, 2, w)
}

func TestInlineImageTerminatorInsidePayloadIsNotConfused(t *testing.T) {
	// "EI" appears in the payload but not followed by whitespace/EOF,
	// so it must not be mistaken for the real terminator.
	ops, err := NewTokenizer("BI /W 1 /H 1 ID AEIBB\nEI").Parse()
	require.NoError(t, err)
	img := ops[0].Params[0].(*InlineImage)
	require.Equal(t, []byte("AEIBB"), img.Data)
}

func TestInlineImageASCII85TerminatorKeepsTilde(t *testing.T) {
	ops, err := NewTokenizer("BI /F /A85 ID somedata~> EI").Parse()
	require.NoError(t, err)
	img := ops[0].Params[0].(*InlineImage)
	require.Equal(t, []byte("somedata~>"), img.Data)
}

func TestInlineImageAbbreviatedKeys(t *testing.T) {
	ops, err := NewTokenizer("BI /W 10 /H 20 /BPC 1 /F /AHx /IM true ID \nEI").Parse()
	require.NoError(t, err)
	img := ops[0].Params[0].(*InlineImage)
	w, _ := core.GetIntVal(img.Width)
	h, _ := core.GetIntVal(img.Height)
	require.Equal(t, 10, w)
	require.Equal(t, 20, h)
	require.NotNil(t, img.ImageMask)
}
