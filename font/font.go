/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package font defines the contracts the interpreter uses to resolve
// font dictionaries and CMaps into renderable Font handles, plus the
// concurrency-safe ResourceManager that caches them across pages.
// Decoding an actual font program is explicitly out of scope here —
// that work belongs to whatever FontRegistry implementation a host
// wires in.
package font

import (
	"fmt"
	"sync"

	"github.com/arkenpdf/pdfcs/core"
)

// Font is the glyph-decoding handle a text-showing operator needs. A
// concrete implementation owns the font program; this module only
// needs the contract.
type Font interface {
	// DecodeString turns raw show-text bytes into glyph codes/widths.
	// The interpreter never calls this itself — it is the device's
	// job, via the TextState it receives.
	DecodeString(b []byte) []Glyph
}

// Glyph is one decoded glyph: its character code and advance width in
// glyph-space units (1/1000 em).
type Glyph struct {
	Code  uint32
	Width float64
}

// CMap maps multi-byte codes to character selectors. An empty CMap
// (ResourceManager's lenient fallback) decodes nothing.
type CMap interface {
	// Lookup returns the Unicode code point mapped to code, if any.
	Lookup(code uint32) (rune, bool)
}

// emptyCMap is the lenient-mode fallback of get_cmap: present, but
// maps nothing.
type emptyCMap struct{}

func (emptyCMap) Lookup(uint32) (rune, bool) { return 0, false }

// Registry resolves a font or CMap specification into a concrete
// handle. It is the out-of-scope "FontRegistry" of spec.md §6 — an
// external collaborator a host supplies; this module calls it but
// does not implement font-program or CMap-stream decoding.
type Registry interface {
	// NewFont builds a Font from a font dictionary of the given
	// subtype. subtype is the resolved PDF Subtype name
	// (Type1, MMType1, TrueType, Type3, CIDFontType0, CIDFontType2).
	NewFont(subtype string, spec *core.PdfObjectDictionary) (Font, error)
	// NewCMap resolves a named CMap (predefined or embedded stream).
	NewCMap(name string) (CMap, error)
}

// ErrCMapNotFound is returned by a strict-mode ResourceManager.GetCMap
// when name does not resolve — mirroring pdfminer's CMapNotFound.
var ErrCMapNotFound = fmt.Errorf("cmap not found")

// ResourceManager resolves and caches fonts and CMaps across an
// entire document, shared by every page/XObject interpreter. Per
// spec.md §5 its font cache must support a concurrent, atomic
// insert-or-get protocol since multiple page workers may share one
// ResourceManager; the cache below looks up, builds and inserts under
// one mutex so that each cached font is built exactly once.
type ResourceManager struct {
	registry Registry
	strict   bool

	mu        sync.Mutex
	fontCache map[*core.PdfObjectDictionary]Font
}

// NewResourceManager returns a ResourceManager backed by registry.
// strict governs whether a missing font/CMap raises or falls back to
// a safe default.
func NewResourceManager(registry Registry, strict bool) *ResourceManager {
	return &ResourceManager{
		registry:  registry,
		strict:    strict,
		fontCache: make(map[*core.PdfObjectDictionary]Font),
	}
}

// GetFont resolves spec into a Font, caching by spec's own identity —
// the resolved dictionary pointer — not by the page-local resource
// name a caller looked it up under. pdfminer's PDFResourceManager.
// get_font caches by the underlying indirect object's objid, which a
// local resource key ("F1") does not reliably stand in for: two pages
// can each bind an unrelated font object under the same local name.
// A host whose object resolver already deduplicates indirect
// references to one shared *core.PdfObjectDictionary per font object
// gets correct cross-page sharing for free; one that doesn't simply
// rebuilds, which is still correct, only uncached. Subtype dispatch
// and the Type0/DescendantFonts merge follow PDFResourceManager.
// get_font in pdfinterp.py.
func (rm *ResourceManager) GetFont(spec *core.PdfObjectDictionary) (Font, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if f, ok := rm.fontCache[spec]; ok {
		return f, nil
	}

	// Built while holding the lock, so two concurrent misses on the
	// same spec never both construct a font.
	f, err := rm.buildFont(spec)
	if err != nil {
		return nil, err
	}
	rm.fontCache[spec] = f
	return f, nil
}

func (rm *ResourceManager) buildFont(spec *core.PdfObjectDictionary) (Font, error) {
	subtype, _ := core.GetNameVal(spec.Get("Subtype"))
	switch subtype {
	case "Type1", "MMType1", "TrueType", "Type3", "CIDFontType0", "CIDFontType2":
		return rm.registry.NewFont(subtype, spec)
	case "Type0":
		descendants, ok := core.GetArray(spec.Get("DescendantFonts"))
		if !ok || descendants.Len() == 0 {
			return rm.fallbackFont(spec, fmt.Errorf("Type0 font missing DescendantFonts"))
		}
		descSpec, ok := core.GetDict(descendants.Get(0))
		if !ok {
			return rm.fallbackFont(spec, fmt.Errorf("Type0 DescendantFonts[0] not a dictionary"))
		}
		// Inherit Encoding/ToUnicode onto the descendant before
		// resolving it, same as pdfminer's Type0 handling.
		merged := core.MakeDict()
		for _, k := range descSpec.Keys() {
			merged.Set(k, descSpec.Get(k))
		}
		if enc := spec.Get("Encoding"); enc != nil {
			merged.Set("Encoding", enc)
		}
		if tu := spec.Get("ToUnicode"); tu != nil {
			merged.Set("ToUnicode", tu)
		}
		descSubtype, _ := core.GetNameVal(merged.Get("Subtype"))
		return rm.registry.NewFont(descSubtype, merged)
	default:
		return rm.fallbackFont(spec, fmt.Errorf("unknown font subtype %q", subtype))
	}
}

func (rm *ResourceManager) fallbackFont(spec *core.PdfObjectDictionary, cause error) (Font, error) {
	if rm.strict {
		return nil, cause
	}
	return rm.registry.NewFont("Type1", spec)
}

// GetCMap resolves name to a CMap. In strict mode a miss returns
// ErrCMapNotFound; in lenient mode it returns an empty CMap.
func (rm *ResourceManager) GetCMap(name string) (CMap, error) {
	cm, err := rm.registry.NewCMap(name)
	if err == nil {
		return cm, nil
	}
	if rm.strict {
		return nil, ErrCMapNotFound
	}
	return emptyCMap{}, nil
}

// GetProcSet is a no-op accepted for forward compatibility — ProcSet
// has no runtime effect per spec.md's GLOSSARY.
func (rm *ResourceManager) GetProcSet([]string) {}
