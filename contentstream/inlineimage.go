/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"fmt"
	"strings"

	"github.com/arkenpdf/pdfcs/core"
)

// InlineImage is everything between a BI and its matching EI: the
// image parameter dictionary (using the abbreviated keys ISO
// 32000-1 Table 93/94 allows) plus the raw, still-encoded image
// bytes. It implements core.PdfObject so it can sit on the operand
// stack like any other pushed value.
type InlineImage struct {
	BitsPerComponent core.PdfObject
	ColorSpace       core.PdfObject
	Decode           core.PdfObject
	DecodeParms      core.PdfObject
	Filter           core.PdfObject
	Height           core.PdfObject
	ImageMask        core.PdfObject
	Intent           core.PdfObject
	Interpolate      core.PdfObject
	Width            core.PdfObject
	Data             []byte
}

func (img *InlineImage) String() string {
	return fmt.Sprintf("InlineImage(len=%d)", len(img.Data))
}

// WriteString implements core.PdfObject.
func (img *InlineImage) WriteString() string {
	var b strings.Builder
	writeIf := func(key string, v core.PdfObject) {
		if v != nil {
			b.WriteString("/" + key + " " + v.WriteString() + "\n")
		}
	}
	writeIf("BPC", img.BitsPerComponent)
	writeIf("CS", img.ColorSpace)
	writeIf("D", img.Decode)
	writeIf("DP", img.DecodeParms)
	writeIf("F", img.Filter)
	writeIf("H", img.Height)
	writeIf("IM", img.ImageMask)
	writeIf("Intent", img.Intent)
	writeIf("I", img.Interpolate)
	writeIf("W", img.Width)
	b.WriteString("ID ")
	b.Write(img.Data)
	b.WriteString("\nEI\n")
	return b.String()
}

// usesASCII85 reports whether img's Filter names the ASCII85 filter,
// directly or as the first entry of a filter array — the one case
// where the inline-image terminator is "~>" instead of "EI".
func usesASCII85(filter core.PdfObject) bool {
	is85 := func(name string) bool { return name == "A85" || name == "ASCII85Decode" }
	if name, ok := core.GetNameVal(filter); ok {
		return is85(name)
	}
	if arr, ok := core.GetArray(filter); ok && arr.Len() > 0 {
		if name, ok := core.GetNameVal(arr.Get(0)); ok {
			return is85(name)
		}
	}
	return false
}

// parseInlineImage reads an inline image's parameter dictionary and
// data. Called with "BI" already consumed; returns once "EI" (or, for
// ASCII85-filtered data, "~>") has closed the image.
func (t *Tokenizer) parseInlineImage() (*InlineImage, error) {
	img := &InlineImage{}

	for {
		t.skipWhitespaceAndComments()
		keyObj, isOp, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if isOp {
			if keyword, _ := keyObj.(*core.PdfObjectString); keyword != nil && keyword.Str() == "ID" {
				break
			}
			return nil, newError(TypeErrorKind, "BI", "unexpected operator %v before ID", keyObj)
		}
		key, ok := core.GetName(keyObj)
		if !ok {
			return nil, newError(TypeErrorKind, "BI", "inline image key must be a name, got %T", keyObj)
		}

		t.skipWhitespaceAndComments()
		val, isOp, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if isOp {
			return nil, newError(TypeErrorKind, "BI", "inline image value must not be an operator")
		}

		switch string(*key) {
		case "BPC", "BitsPerComponent":
			img.BitsPerComponent = val
		case "CS", "ColorSpace":
			img.ColorSpace = val
		case "D", "Decode":
			img.Decode = val
		case "DP", "DecodeParms":
			img.DecodeParms = val
		case "F", "Filter":
			img.Filter = val
		case "H", "Height":
			img.Height = val
		case "IM", "ImageMask":
			img.ImageMask = val
		case "Intent":
			img.Intent = val
		case "I", "Interpolate":
			img.Interpolate = val
		case "W", "Width":
			img.Width = val
		case "Length", "Subtype", "Type":
			// Unnecessary on an inline image, ignored per ISO 32000-1 §8.9.7.
		default:
			t.log().Debug("unknown inline image key %q, ignoring", string(*key))
		}
	}

	// One whitespace byte separates "ID" from the data.
	if b, err := t.reader.Peek(1); err == nil && core.IsWhiteSpace(b[0]) {
		t.reader.Discard(1)
	}

	terminator := []byte("EI")
	ascii85 := usesASCII85(img.Filter)
	if ascii85 {
		terminator = []byte("~>")
	}

	data, err := t.scanToTerminator(terminator)
	if err != nil {
		return nil, err
	}
	if ascii85 {
		// The decoder needs the terminator bytes; keep them.
		data = append(data, terminator...)
		// "~>" only ends the ASCII85-encoded data in-band; ISO 32000-1
		// §8.9.7 still requires the literal "EI" keyword afterward,
		// independent of filter. The non-ASCII85 branch already
		// consumed its "EI" as scanToTerminator's own terminator.
		if err := t.consumeClosingEI(); err != nil {
			return nil, err
		}
	}
	img.Data = data
	return img, nil
}

// consumeClosingEI swallows the "EI" keyword following ASCII85 inline
// image data's "~>" in-band marker.
func (t *Tokenizer) consumeClosingEI() error {
	t.skipWhitespaceAndComments()
	b, err := t.reader.Peek(2)
	if err == nil && len(b) == 2 && b[0] == 'E' && b[1] == 'I' {
		t.reader.Discard(2)
		return nil
	}
	if t.strict {
		return newError(ParseErrorKind, "EI", "missing EI keyword after ASCII85 inline image data")
	}
	t.log().Debug("missing EI keyword after ASCII85 inline image data")
	return nil
}

// scanToTerminator implements the inline-image EOD search: scan ahead
// for the next occurrence of terminator, then require it be followed
// by whitespace or end-of-stream before accepting it — otherwise the
// match was inside the image payload and scanning resumes.
func (t *Tokenizer) scanToTerminator(terminator []byte) ([]byte, error) {
	var data []byte
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return nil, newError(ParseErrorKind, "ID", "end of stream before inline image terminator %q", terminator)
		}

		if b != terminator[0] {
			data = append(data, b)
			continue
		}

		matched := []byte{b}
		ok := true
		for i := 1; i < len(terminator); i++ {
			c, err := t.reader.ReadByte()
			if err != nil {
				ok = false
				break
			}
			matched = append(matched, c)
			if c != terminator[i] {
				ok = false
				break
			}
		}
		if !ok {
			data = append(data, matched...)
			continue
		}

		next, err := t.reader.Peek(1)
		followedByBoundary := err != nil || core.IsWhiteSpace(next[0])
		if !followedByBoundary {
			data = append(data, matched...)
			continue
		}
		if err == nil {
			t.reader.Discard(1)
		}
		return trimTrailingNewline(data), nil
	}
}

// trimTrailingNewline strips a single trailing CR, LF, or CRLF pair —
// the line break that conventionally separates the image payload from
// the terminator — from data.
func trimTrailingNewline(data []byte) []byte {
	n := len(data)
	if n >= 2 && data[n-2] == '\r' && data[n-1] == '\n' {
		return data[:n-2]
	}
	if n >= 1 && (data[n-1] == '\r' || data[n-1] == '\n') {
		return data[:n-1]
	}
	return data
}
