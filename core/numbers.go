/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/arkenpdf/pdfcs/common"
)

// ParseNumber reads a PDF numeric object from buf: one or more decimal
// digits, optionally signed, optionally carrying a decimal point (which
// makes it a PdfObjectFloat rather than a PdfObjectInteger).
//
// PDF producers are not supposed to emit exponential notation (ISO
// 32000-1 §7.3.3), but some do, so it is accepted here too.
func ParseNumber(buf *bufio.Reader) (PdfObject, error) {
	isFloat := false
	allowSign := true
	var r bytes.Buffer
loop:
	for {
		bb, err := buf.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case allowSign && (bb[0] == '-' || bb[0] == '+'):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			allowSign = false
		case IsDecimalDigit(bb[0]):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
		case bb[0] == '.':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
		case bb[0] == 'e' || bb[0] == 'E':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
			allowSign = true
		default:
			break loop
		}
	}
	if isFloat {
		v, err := strconv.ParseFloat(r.String(), 64)
		if err != nil {
			common.Log.Debug("malformed real %q, using 0.0: %v", r.String(), err)
			v = 0
		}
		return MakeFloat(v), nil
	}
	v, err := strconv.ParseInt(r.String(), 10, 64)
	if err != nil {
		common.Log.Debug("malformed integer %q, using 0: %v", r.String(), err)
		v = 0
	}
	return MakeInteger(v), nil
}
