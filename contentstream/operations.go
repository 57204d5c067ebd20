/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bytes"

	"github.com/arkenpdf/pdfcs/core"
)

// Operation is one parsed content-stream instruction: an operator
// keyword together with the operands popped for it (leftmost operand
// is the deepest on the stack), and the instruction index the
// tokenizer assigned the operator token.
type Operation struct {
	Operand          string
	Params           []core.PdfObject
	InstructionIndex int
}

// Operations is an ordered sequence of parsed instructions, as
// produced by Tokenizer.Parse.
type Operations []*Operation

// Balanced reports whether ops carries balanced q/Q pairs — the same
// check spec.md's property 1 ("balanced save/restore") makes over a
// running interpreter, available here without executing anything.
func (ops Operations) Balanced() bool {
	depth := 0
	for _, op := range ops {
		switch op.Operand {
		case "q":
			depth++
		case "Q":
			if depth == 0 {
				return false
			}
			depth--
		}
	}
	return depth == 0
}

// Bytes renders ops back to content-stream syntax.
func (ops Operations) Bytes() []byte {
	var buf bytes.Buffer
	for _, op := range ops {
		if op == nil {
			continue
		}
		if op.Operand == "BI" {
			buf.WriteString("BI\n")
			if len(op.Params) == 1 {
				buf.WriteString(op.Params[0].WriteString())
			}
			continue
		}
		for _, p := range op.Params {
			buf.WriteString(p.WriteString())
			buf.WriteByte(' ')
		}
		buf.WriteString(op.Operand)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (ops Operations) String() string {
	return string(ops.Bytes())
}

// ExtractText is a debug helper that walks ops and collects the raw
// character codes shown by Tj/TJ inside BT/ET, without taking any font
// encoding into account — grounded on the teacher's deprecated
// ContentStreamParser.ExtractText. A newline is emitted on Td/TD/T* (a
// new line of text) and on a Tm whose y drops below the previous one;
// a tab is emitted when Tm's x advances past the previous value; a
// large negative TJ displacement is rendered as a space.
func (ops Operations) ExtractText() (string, error) {
	inText := false
	xPos, yPos := float64(-1), float64(-1)
	var txt bytes.Buffer

	for _, op := range ops {
		switch op.Operand {
		case "BT":
			inText = true
		case "ET":
			inText = false
		case "Td", "TD", "T*":
			txt.WriteByte('\n')
		case "Tm":
			if len(op.Params) != 6 {
				continue
			}
			x, err := core.GetNumberAsFloat(op.Params[4])
			if err != nil {
				continue
			}
			y, err := core.GetNumberAsFloat(op.Params[5])
			if err != nil {
				continue
			}
			switch {
			case yPos == -1:
				yPos = y
			case yPos > y:
				txt.WriteByte('\n')
				xPos, yPos = x, y
				continue
			}
			switch {
			case xPos == -1:
				xPos = x
			case xPos < x:
				txt.WriteByte('\t')
				xPos = x
			}
		}

		if !inText {
			continue
		}
		switch op.Operand {
		case "TJ":
			if len(op.Params) < 1 {
				continue
			}
			arr, ok := core.GetArray(op.Params[0])
			if !ok {
				return "", newError(TypeErrorKind, "TJ", "invalid parameter type, no array (%T)", op.Params[0])
			}
			for _, el := range arr.Elements() {
				switch v := el.(type) {
				case *core.PdfObjectString:
					txt.WriteString(v.Str())
				case *core.PdfObjectFloat:
					if *v < -100 {
						txt.WriteByte(' ')
					}
				case *core.PdfObjectInteger:
					if *v < -100 {
						txt.WriteByte(' ')
					}
				}
			}
		case "Tj":
			if len(op.Params) < 1 {
				continue
			}
			str, ok := op.Params[0].(*core.PdfObjectString)
			if !ok {
				return "", newError(TypeErrorKind, "Tj", "invalid parameter type, not string (%T)", op.Params[0])
			}
			txt.WriteString(str.Str())
		}
	}

	return txt.String(), nil
}
