/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package colorspace tracks color-space component counts — how many
// operands SCN/scn must pop for the active space — without performing
// any colorimetric conversion. Conversion to device color is the
// device's job.
package colorspace

import "github.com/arkenpdf/pdfcs/core"

// ColorSpace is a named color space together with the number of
// numeric components SC/SCN needs to consume.
type ColorSpace struct {
	Name       string
	Components int
}

// predefined holds the component counts for the PDF-predefined color
// spaces. ISO 32000-1 §8.6.
var predefined = map[string]int{
	"DeviceGray": 1,
	"CalGray":    1,
	"DeviceRGB":  3,
	"CalRGB":     3,
	"Lab":        3,
	"DeviceCMYK": 4,
	"CalCMYK":    4,
	"Pattern":    0,
	"Indexed":    1,
	"ICCBased":   3, // overridden by the stream's /N when known
	"Separation": 1,
	"DeviceN":    1, // overridden by the length of the name array
}

// Registry is the csmap of spec.md §3: a per-page table of color
// spaces, seeded from the predefined set and extended by the page's
// /ColorSpace resource subdictionary.
type Registry struct {
	spaces map[string]ColorSpace
}

// NewRegistry returns a Registry seeded with the predefined color
// spaces.
func NewRegistry() *Registry {
	r := &Registry{spaces: make(map[string]ColorSpace, len(predefined))}
	for name, n := range predefined {
		r.spaces[name] = ColorSpace{Name: name, Components: n}
	}
	return r
}

// Get returns the color space registered under name.
func (r *Registry) Get(name string) (ColorSpace, bool) {
	cs, ok := r.spaces[name]
	return cs, ok
}

// Bind resolves a page's /ColorSpace resource subdictionary into r,
// following the exact component-count resolution pdfminer's
// `init_resources` closure uses: ICCBased takes /N from the referenced
// stream dict, DeviceN takes the length of its names array, Indexed
// colorspace arrays resolve to 1 (index-into-table), everything else
// falls back to the predefined table (or defaults to 1 component if
// wholly unrecognized, matching the spec's lenient-mode fallback).
func (r *Registry) Bind(resources *core.PdfObjectDictionary) {
	if resources == nil {
		return
	}
	csDict, ok := core.GetDict(resources.Get("ColorSpace"))
	if !ok {
		return
	}
	for _, key := range csDict.Keys() {
		name := string(key)
		r.spaces[name] = r.resolve(name, csDict.Get(key))
	}
}

func (r *Registry) resolve(name string, spec core.PdfObject) ColorSpace {
	if arr, ok := core.GetArray(spec); ok && arr.Len() > 0 {
		family, _ := core.GetNameVal(arr.Get(0))
		switch family {
		case "ICCBased":
			if stream, ok := core.GetDict(arr.Get(1)); ok {
				if n, ok := core.GetIntVal(stream.Get("N")); ok {
					return ColorSpace{Name: name, Components: n}
				}
			}
			return ColorSpace{Name: name, Components: predefined["ICCBased"]}
		case "DeviceN":
			if names, ok := core.GetArray(arr.Get(1)); ok {
				return ColorSpace{Name: name, Components: names.Len()}
			}
			return ColorSpace{Name: name, Components: predefined["DeviceN"]}
		case "Indexed":
			return ColorSpace{Name: name, Components: 1}
		case "Separation":
			return ColorSpace{Name: name, Components: predefined["Separation"]}
		default:
			if n, ok := predefined[family]; ok {
				return ColorSpace{Name: name, Components: n}
			}
		}
	}
	if familyName, ok := core.GetNameVal(spec); ok {
		if n, ok := predefined[familyName]; ok {
			return ColorSpace{Name: name, Components: n}
		}
	}
	return ColorSpace{Name: name, Components: 1}
}
