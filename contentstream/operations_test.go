/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTextJoinsTjAcrossLines(t *testing.T) {
	ops, err := NewTokenizer(`BT /F1 12 Tf 72 720 Td (Hello) Tj T* (World) Tj ET`).Parse()
	require.NoError(t, err)

	txt, err := ops.ExtractText()
	require.NoError(t, err)
	require.Equal(t, "\nHello\nWorld", txt)
}

func TestExtractTextIgnoresOutsideBTET(t *testing.T) {
	ops, err := NewTokenizer(`(ignored) Tj BT (kept) Tj ET`).Parse()
	require.NoError(t, err)

	txt, err := ops.ExtractText()
	require.NoError(t, err)
	require.Equal(t, "kept", txt)
}

func TestExtractTextTJInsertsSpaceForLargeNegativeDelta(t *testing.T) {
	ops, err := NewTokenizer(`BT [(A) -150 (B) -50 (C)] TJ ET`).Parse()
	require.NoError(t, err)

	txt, err := ops.ExtractText()
	require.NoError(t, err)
	require.Equal(t, "A BC", txt)
}

func TestExtractTextTmNewlineOnDecreasingY(t *testing.T) {
	ops, err := NewTokenizer(`BT 1 0 0 1 0 700 Tm (A) Tj 1 0 0 1 0 600 Tm (B) Tj ET`).Parse()
	require.NoError(t, err)

	txt, err := ops.ExtractText()
	require.NoError(t, err)
	require.Equal(t, "A\nB", txt)
}
