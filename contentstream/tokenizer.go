/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"bufio"
	"io"
	"strings"

	"github.com/arkenpdf/pdfcs/common"
	"github.com/arkenpdf/pdfcs/core"
)

// Tokenizer scans a content stream's byte-level syntax — the operand
// and operator tokens of ISO 32000-1 §7.8/§7.9 — into a parsed
// Operations sequence. It does not interpret them; that is the
// Interpreter's job.
type Tokenizer struct {
	reader *bufio.Reader
	strict bool

	// instructionIndex counts operator tokens emitted so far, for the
	// cross-cutting instruction-index parameter Tj/TJ/'/" carry.
	instructionIndex int
}

// NewTokenizer returns a Tokenizer reading from the string content.
func NewTokenizer(content string) *Tokenizer {
	return &Tokenizer{reader: bufio.NewReader(strings.NewReader(content))}
}

// NewTokenizerReader returns a Tokenizer reading content from r.
func NewTokenizerReader(r io.Reader) *Tokenizer {
	return &Tokenizer{reader: bufio.NewReader(r)}
}

// SetStrict toggles strict mode: malformed operands raise instead of
// being skipped.
func (t *Tokenizer) SetStrict(strict bool) *Tokenizer {
	t.strict = strict
	return t
}

func (t *Tokenizer) log() common.Logger {
	return common.Log
}

// Parse reads content to exhaustion and returns the full list of
// operations. BI/ID/EI is handled internally: a single "BI" Operation
// carries the parsed *InlineImage as its sole parameter.
func (t *Tokenizer) Parse() (Operations, error) {
	var ops Operations
	var args []core.PdfObject

	for {
		t.skipWhitespaceAndComments()
		if _, err := t.reader.Peek(1); err == io.EOF {
			break
		}

		obj, isOp, err := t.parseObject()
		if err != nil {
			if err == io.EOF {
				break
			}
			if t.strict {
				return nil, err
			}
			t.log().Debug("skipping malformed operand: %v", err)
			t.skipToWhitespace()
			continue
		}

		if !isOp {
			args = append(args, obj)
			continue
		}

		keyword := obj.(*core.PdfObjectString).Str()
		t.instructionIndex++
		idx := t.instructionIndex

		if keyword == "BI" {
			img, err := t.parseInlineImage()
			if err != nil {
				if t.strict {
					return nil, err
				}
				t.log().Debug("skipping malformed inline image: %v", err)
				args = nil
				continue
			}
			ops = append(ops, &Operation{Operand: "BI", Params: []core.PdfObject{img}, InstructionIndex: idx})
			args = nil
			continue
		}

		ops = append(ops, &Operation{Operand: keyword, Params: args, InstructionIndex: idx})
		args = nil
	}

	return ops, nil
}

// parseObject reads the next operand or operator keyword. The second
// return value is true when the token is a bare operator keyword, in
// which case the PdfObject is a *core.PdfObjectString wrapping it.
func (t *Tokenizer) parseObject() (core.PdfObject, bool, error) {
	t.skipWhitespaceAndComments()
	b, err := t.reader.Peek(1)
	if err != nil {
		return nil, false, err
	}

	switch {
	case b[0] == '/':
		name, err := t.parseName()
		return name, false, err
	case b[0] == '(':
		str, err := t.parseLiteralString()
		return str, false, err
	case b[0] == '<':
		next, _ := t.reader.Peek(2)
		if len(next) == 2 && next[1] == '<' {
			dict, err := t.parseDict()
			return dict, false, err
		}
		str, err := t.parseHexString()
		return str, false, err
	case b[0] == '[':
		arr, err := t.parseArray()
		return arr, false, err
	case core.IsDecimalDigit(b[0]) || b[0] == '-' || b[0] == '+' || b[0] == '.':
		num, err := core.ParseNumber(t.reader)
		return num, false, err
	default:
		keyword, err := t.parseKeyword()
		if err != nil {
			return nil, false, err
		}
		switch keyword {
		case "true":
			return core.MakeBool(true), false, nil
		case "false":
			return core.MakeBool(false), false, nil
		case "null":
			return core.MakeNull(), false, nil
		default:
			if !isOperator(keyword) {
				if t.strict {
					return nil, false, newError(UnknownOperatorKind, keyword, "unrecognized operator")
				}
				t.log().Debug("unknown operator %q, passing through", keyword)
			}
			return core.MakeString(keyword), true, nil
		}
	}
}

// parseKeyword reads a bare run of non-whitespace, non-delimiter bytes
// — an operand keyword (true/false/null) or an operator.
func (t *Tokenizer) parseKeyword() (string, error) {
	var b strings.Builder
	for {
		c, err := t.reader.Peek(1)
		if err != nil {
			break
		}
		if core.IsWhiteSpace(c[0]) || core.IsDelimiter(c[0]) {
			break
		}
		ch, _ := t.reader.ReadByte()
		b.WriteByte(ch)
	}
	if b.Len() == 0 {
		ch, err := t.reader.ReadByte()
		if err != nil {
			return "", err
		}
		return "", newError(ParseErrorKind, "", "unexpected byte %q", ch)
	}
	return b.String(), nil
}

// parseName reads a /Name, decoding #XX hex escapes (ISO 32000-1 §7.3.5).
func (t *Tokenizer) parseName() (*core.PdfObjectName, error) {
	t.reader.Discard(1) // '/'
	var b strings.Builder
	for {
		c, err := t.reader.Peek(1)
		if err != nil {
			break
		}
		if core.IsWhiteSpace(c[0]) || core.IsDelimiter(c[0]) {
			break
		}
		ch, _ := t.reader.ReadByte()
		if ch == '#' {
			hex, err := t.reader.Peek(2)
			if err == nil && len(hex) == 2 && isHexDigit(hex[0]) && isHexDigit(hex[1]) {
				t.reader.Discard(2)
				b.WriteByte(hexValue(hex[0])<<4 | hexValue(hex[1]))
				continue
			}
		}
		b.WriteByte(ch)
	}
	name := core.PdfObjectName(b.String())
	return &name, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// parseLiteralString reads a (balanced-parens) string with backslash
// and octal escapes (ISO 32000-1 §7.3.4.2).
func (t *Tokenizer) parseLiteralString() (*core.PdfObjectString, error) {
	t.reader.Discard(1) // '('
	var b strings.Builder
	depth := 1
	for depth > 0 {
		ch, err := t.reader.ReadByte()
		if err != nil {
			return nil, newError(ParseErrorKind, "", "unterminated literal string")
		}
		switch ch {
		case '(':
			depth++
			b.WriteByte(ch)
		case ')':
			depth--
			if depth > 0 {
				b.WriteByte(ch)
			}
		case '\\':
			esc, err := t.reader.ReadByte()
			if err != nil {
				return nil, newError(ParseErrorKind, "", "unterminated escape in literal string")
			}
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case '(', ')', '\\':
				b.WriteByte(esc)
			case '\r':
				// Line continuation; swallow an immediately following \n too.
				if peek, err := t.reader.Peek(1); err == nil && peek[0] == '\n' {
					t.reader.Discard(1)
				}
			case '\n':
				// Line continuation.
			default:
				if core.IsOctalDigit(esc) {
					val := esc - '0'
					for i := 0; i < 2; i++ {
						peek, err := t.reader.Peek(1)
						if err != nil || !core.IsOctalDigit(peek[0]) {
							break
						}
						d, _ := t.reader.ReadByte()
						val = val*8 + (d - '0')
					}
					b.WriteByte(val)
				} else {
					b.WriteByte(esc)
				}
			}
		default:
			b.WriteByte(ch)
		}
	}
	return core.MakeString(b.String()), nil
}

// parseHexString reads a <hex> string.
func (t *Tokenizer) parseHexString() (*core.PdfObjectString, error) {
	t.reader.Discard(1) // '<'
	var digits strings.Builder
	for {
		ch, err := t.reader.ReadByte()
		if err != nil {
			return nil, newError(ParseErrorKind, "", "unterminated hex string")
		}
		if ch == '>' {
			break
		}
		if isHexDigit(ch) {
			digits.WriteByte(ch)
		}
	}
	s := digits.String()
	if len(s)%2 != 0 {
		s += "0"
	}
	var b strings.Builder
	for i := 0; i < len(s); i += 2 {
		b.WriteByte(hexValue(s[i])<<4 | hexValue(s[i+1]))
	}
	return core.MakeHexString(b.String()), nil
}

// parseArray reads a [ ... ] array, recursing through parseObject.
func (t *Tokenizer) parseArray() (*core.PdfObjectArray, error) {
	t.reader.Discard(1) // '['
	arr := core.MakeArray()
	for {
		t.skipWhitespaceAndComments()
		b, err := t.reader.Peek(1)
		if err != nil {
			return nil, newError(ParseErrorKind, "", "unterminated array")
		}
		if b[0] == ']' {
			t.reader.Discard(1)
			return arr, nil
		}
		obj, isOp, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if isOp {
			return nil, newError(TypeErrorKind, "", "unexpected operator inside array")
		}
		arr.Append(obj)
	}
}

// parseDict reads a << ... >> dictionary.
func (t *Tokenizer) parseDict() (*core.PdfObjectDictionary, error) {
	t.reader.Discard(2) // '<<'
	dict := core.MakeDict()
	for {
		t.skipWhitespaceAndComments()
		b, err := t.reader.Peek(2)
		if err == nil && len(b) == 2 && b[0] == '>' && b[1] == '>' {
			t.reader.Discard(2)
			return dict, nil
		}
		keyObj, isOp, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if isOp {
			return nil, newError(TypeErrorKind, "", "expected dictionary key, got operator")
		}
		key, ok := core.GetName(keyObj)
		if !ok {
			return nil, newError(TypeErrorKind, "", "dictionary key must be a name, got %T", keyObj)
		}
		t.skipWhitespaceAndComments()
		val, isOp, err := t.parseObject()
		if err != nil {
			return nil, err
		}
		if isOp {
			return nil, newError(TypeErrorKind, "", "dictionary value must not be an operator")
		}
		dict.Set(*key, val)
	}
}

func (t *Tokenizer) skipWhitespaceAndComments() {
	for {
		b, err := t.reader.Peek(1)
		if err != nil {
			return
		}
		if core.IsWhiteSpace(b[0]) {
			t.reader.Discard(1)
			continue
		}
		if b[0] == '%' {
			for {
				c, err := t.reader.ReadByte()
				if err != nil || c == '\n' || c == '\r' {
					break
				}
			}
			continue
		}
		return
	}
}

func (t *Tokenizer) skipToWhitespace() {
	for {
		b, err := t.reader.Peek(1)
		if err != nil || core.IsWhiteSpace(b[0]) {
			return
		}
		t.reader.Discard(1)
	}
}
