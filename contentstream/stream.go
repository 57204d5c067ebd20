/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"fmt"

	"github.com/arkenpdf/pdfcs/core"
)

// Stream is a resolved PDF stream object: a dictionary plus its
// already-decoded bytes. Producing one — following cross-reference
// tables, resolving indirect references, inflating Flate/DCT/CCITT
// filters — is the PDF file parser's job and explicitly not this
// module's; a host hands Streams in already resolved, the way a Form
// or Image XObject resource entry arrives.
type Stream struct {
	Dict *core.PdfObjectDictionary
	Data []byte
}

func (s *Stream) String() string {
	return fmt.Sprintf("Stream(%d bytes)", len(s.Data))
}

// WriteString implements core.PdfObject.
func (s *Stream) WriteString() string {
	return s.Dict.WriteString()
}
