/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/arkenpdf/pdfcs/colorspace"
	"github.com/arkenpdf/pdfcs/common"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/font"
)

// Resources is one page or Form XObject's bound resource dictionary:
// the fontmap, xobjmap, and csmap of spec.md §3, built once per
// Do/process_page entry from the raw /Resources dictionary.
type Resources struct {
	Dict        *core.PdfObjectDictionary
	Fonts       map[string]font.Font
	XObjects    map[string]*Stream
	ColorSpaces *colorspace.Registry
}

// BindResources resolves dict's /Font, /XObject and /ColorSpace
// entries. rm resolves font dictionaries into Font handles; a nil dict
// produces an empty Resources bound only to the predefined color
// spaces (the PDF 1.1 legacy case: a Form XObject missing /Resources
// inherits its parent's instead — see Interpreter.executeForm).
func BindResources(dict *core.PdfObjectDictionary, rm *font.ResourceManager) *Resources {
	r := &Resources{
		Dict:        dict,
		Fonts:       make(map[string]font.Font),
		XObjects:    make(map[string]*Stream),
		ColorSpaces: colorspace.NewRegistry(),
	}
	if dict == nil {
		return r
	}
	r.ColorSpaces.Bind(dict)

	if fontDict, ok := core.GetDict(dict.Get("Font")); ok {
		for _, key := range fontDict.Keys() {
			spec, ok := core.GetDict(fontDict.Get(key))
			if !ok {
				common.Log.Debug("font resource %q is not a dictionary, skipping", string(key))
				continue
			}
			f, err := rm.GetFont(spec)
			if err != nil {
				common.Log.Debug("font resource %q: %v", string(key), err)
				continue
			}
			r.Fonts[string(key)] = f
		}
	}

	if xobjDict, ok := core.GetDict(dict.Get("XObject")); ok {
		for _, key := range xobjDict.Keys() {
			if stream, ok := xobjDict.Get(key).(*Stream); ok {
				r.XObjects[string(key)] = stream
			}
		}
	}

	return r
}

// GetFont returns the font bound to name, if any.
func (r *Resources) GetFont(name string) (font.Font, bool) {
	f, ok := r.Fonts[name]
	return f, ok
}

// GetXObject returns the XObject stream bound to name, if any.
func (r *Resources) GetXObject(name string) (*Stream, bool) {
	s, ok := r.XObjects[name]
	return s, ok
}
