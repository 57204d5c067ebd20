/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package font

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkenpdf/pdfcs/core"
)

type fakeRegistry struct {
	built []string
}

func (r *fakeRegistry) NewFont(subtype string, spec *core.PdfObjectDictionary) (Font, error) {
	r.built = append(r.built, subtype)
	return &fakeFont{subtype: subtype}, nil
}

func (r *fakeRegistry) NewCMap(name string) (CMap, error) {
	if name == "Identity-H" {
		return fakeCMap{}, nil
	}
	return nil, fmt.Errorf("unknown cmap %q", name)
}

type fakeFont struct{ subtype string }

func (f fakeFont) DecodeString(b []byte) []Glyph { return nil }

type fakeCMap struct{}

func (fakeCMap) Lookup(code uint32) (rune, bool) { return rune(code), true }

func dictWithSubtype(subtype string) *core.PdfObjectDictionary {
	d := core.MakeDict()
	d.Set("Subtype", core.MakeName(subtype))
	return d
}

func TestGetFontDirectSubtype(t *testing.T) {
	rm := NewResourceManager(&fakeRegistry{}, false)
	f, err := rm.GetFont(dictWithSubtype("TrueType"))
	require.NoError(t, err)
	require.Equal(t, "TrueType", f.(*fakeFont).subtype)
}

func TestGetFontCachesByDictIdentity(t *testing.T) {
	reg := &fakeRegistry{}
	rm := NewResourceManager(reg, false)
	spec := dictWithSubtype("Type1")

	f1, err := rm.GetFont(spec)
	require.NoError(t, err)
	f2, err := rm.GetFont(spec)
	require.NoError(t, err)

	require.Same(t, f1, f2)
	require.Len(t, reg.built, 1)
}

// TestGetFontDoesNotCollideAcrossDifferentSpecs guards against caching
// by a page-local resource name: two unrelated font objects that both
// happen to be bound under the same local key ("F1") on different
// pages must never share a cached Font. The cache key is spec's own
// dictionary identity, not any caller-supplied name.
func TestGetFontDoesNotCollideAcrossDifferentSpecs(t *testing.T) {
	reg := &fakeRegistry{}
	rm := NewResourceManager(reg, false)

	page1F1 := dictWithSubtype("Type1")
	page2F1 := dictWithSubtype("TrueType")

	f1, err := rm.GetFont(page1F1)
	require.NoError(t, err)
	f2, err := rm.GetFont(page2F1)
	require.NoError(t, err)

	require.NotSame(t, f1, f2)
	require.Equal(t, "Type1", f1.(*fakeFont).subtype)
	require.Equal(t, "TrueType", f2.(*fakeFont).subtype)
	require.Len(t, reg.built, 2)
}

func TestGetFontType0MergesDescendant(t *testing.T) {
	reg := &fakeRegistry{}
	rm := NewResourceManager(reg, false)

	desc := dictWithSubtype("CIDFontType0")
	descendants := core.MakeArray(desc)

	type0 := core.MakeDict()
	type0.Set("Subtype", core.MakeName("Type0"))
	type0.Set("DescendantFonts", descendants)
	type0.Set("Encoding", core.MakeName("Identity-H"))

	_, err := rm.GetFont(type0)
	require.NoError(t, err)
	require.Equal(t, []string{"CIDFontType0"}, reg.built)
}

func TestGetFontUnknownSubtypeLenientFallsBackToType1(t *testing.T) {
	reg := &fakeRegistry{}
	rm := NewResourceManager(reg, false)

	_, err := rm.GetFont(dictWithSubtype("Weird"))
	require.NoError(t, err)
	require.Equal(t, []string{"Type1"}, reg.built)
}

func TestGetFontUnknownSubtypeStrictErrors(t *testing.T) {
	rm := NewResourceManager(&fakeRegistry{}, true)
	_, err := rm.GetFont(dictWithSubtype("Weird"))
	require.Error(t, err)
}

func TestGetCMapLenientFallsBackToEmpty(t *testing.T) {
	rm := NewResourceManager(&fakeRegistry{}, false)
	cm, err := rm.GetCMap("NoSuchCMap")
	require.NoError(t, err)
	_, found := cm.Lookup(65)
	require.False(t, found)
}

func TestGetCMapStrictErrors(t *testing.T) {
	rm := NewResourceManager(&fakeRegistry{}, true)
	_, err := rm.GetCMap("NoSuchCMap")
	require.ErrorIs(t, err, ErrCMapNotFound)
}

func TestGetCMapResolvesKnown(t *testing.T) {
	rm := NewResourceManager(&fakeRegistry{}, true)
	cm, err := rm.GetCMap("Identity-H")
	require.NoError(t, err)
	r, found := cm.Lookup(65)
	require.True(t, found)
	require.Equal(t, rune(65), r)
}
