/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bytes"

	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/transform"
)

// Page is everything ProcessPage needs: the already-decoded content
// stream bytes, the resource dictionary to bind, and the geometry
// needed to compute the initial CTM. Producing these from a real PDF
// file — resolving the page tree, inheriting inherited attributes,
// decompressing the content stream — is the file parser's job and out
// of scope here; a host hands a Page in fully resolved.
type Page struct {
	Label     string
	MediaBox  transform.Rect
	Rotate    int
	Content   []byte
	Resources *core.PdfObjectDictionary
}

// ProcessPage renders page's content stream: it computes the initial
// CTM from the media box and rotation (ISO 32000-1 §14.11.2, spec.md
// §4.10), binds resources, and brackets rendering with
// Device.BeginPage/EndPage.
func (in *Interpreter) ProcessPage(page *Page) error {
	in.ctm = initialCTM(page.MediaBox, page.Rotate)
	in.resources = BindResources(page.Resources, in.rm)
	in.device.SetCTM(in.ctm)
	in.device.BeginPage(page.Label, in.ctm)

	tok := NewTokenizerReader(bytes.NewReader(page.Content)).SetStrict(in.strict)
	ops, err := tok.Parse()
	if err != nil {
		in.device.EndPage(page.Label)
		return err
	}
	if err := in.Render(ops); err != nil {
		in.device.EndPage(page.Label)
		return err
	}

	in.device.EndPage(page.Label)
	return nil
}

// initialCTM computes the page-space-to-device-space transform for a
// media box and /Rotate value, per the four cardinal rotations ISO
// 32000-1 permits.
func initialCTM(box transform.Rect, rotate int) transform.Matrix {
	switch ((rotate % 360) + 360) % 360 {
	case 90:
		return transform.NewMatrix(0, -1, 1, 0, -box.Y0, box.X1)
	case 180:
		return transform.NewMatrix(-1, 0, 0, -1, box.X1, box.Y1)
	case 270:
		return transform.NewMatrix(0, 1, -1, 0, box.Y1, -box.X0)
	default:
		return transform.NewMatrix(1, 0, 0, 1, -box.X0, -box.Y0)
	}
}
