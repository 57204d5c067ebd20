/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkenpdf/pdfcs/core"
)

func TestPredefinedComponentCounts(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		name string
		want int
	}{
		{"DeviceGray", 1},
		{"DeviceRGB", 3},
		{"DeviceCMYK", 4},
		{"CalGray", 1},
		{"CalRGB", 3},
		{"CalCMYK", 4},
		{"Lab", 3},
		{"Pattern", 0},
	}
	for _, c := range cases {
		cs, ok := r.Get(c.name)
		require.True(t, ok, c.name)
		require.Equal(t, c.want, cs.Components, c.name)
	}
}

func TestGetUnknownMisses(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("CS0")
	require.False(t, ok)
}

func TestBindICCBasedTakesStreamN(t *testing.T) {
	r := NewRegistry()
	iccStream := core.MakeDict()
	iccStream.Set("N", core.MakeInteger(4))
	arr := core.MakeArray()
	arr.Append(core.MakeName("ICCBased"))
	arr.Append(iccStream)

	csDict := core.MakeDict()
	csDict.Set("CS0", arr)
	resources := core.MakeDict()
	resources.Set("ColorSpace", csDict)

	r.Bind(resources)
	cs, ok := r.Get("CS0")
	require.True(t, ok)
	require.Equal(t, 4, cs.Components)
}

func TestBindDeviceNTakesNameArrayLength(t *testing.T) {
	r := NewRegistry()
	names := core.MakeArray()
	names.Append(core.MakeName("Cyan"))
	names.Append(core.MakeName("Magenta"))
	names.Append(core.MakeName("Yellow"))

	arr := core.MakeArray()
	arr.Append(core.MakeName("DeviceN"))
	arr.Append(names)

	csDict := core.MakeDict()
	csDict.Set("CS1", arr)
	resources := core.MakeDict()
	resources.Set("ColorSpace", csDict)

	r.Bind(resources)
	cs, ok := r.Get("CS1")
	require.True(t, ok)
	require.Equal(t, 3, cs.Components)
}

func TestBindUnrecognizedFamilyDefaultsToOne(t *testing.T) {
	r := NewRegistry()
	arr := core.MakeArray()
	arr.Append(core.MakeName("SomeExoticSpace"))

	csDict := core.MakeDict()
	csDict.Set("CS2", arr)
	resources := core.MakeDict()
	resources.Set("ColorSpace", csDict)

	r.Bind(resources)
	cs, ok := r.Get("CS2")
	require.True(t, ok)
	require.Equal(t, 1, cs.Components)
}

func TestBindNilResourcesIsNoOp(t *testing.T) {
	r := NewRegistry()
	r.Bind(nil)
	_, ok := r.Get("CS0")
	require.False(t, ok)
}
