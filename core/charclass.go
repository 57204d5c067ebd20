/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

// IsWhiteSpace returns true for the six PDF whitespace bytes:
// NUL, tab, line feed, form feed, carriage return and space.
// ISO 32000-1 §7.2.2, Table 1.
func IsWhiteSpace(c byte) bool {
	switch c {
	case 0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}
	return false
}

// IsDelimiter returns true for the ten PDF delimiter bytes that end a
// token without needing intervening whitespace.
// ISO 32000-1 §7.2.2, Table 2.
func IsDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// IsDecimalDigit returns true for '0'-'9'.
func IsDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsOctalDigit returns true for '0'-'7', the digits valid in a string's
// backslash-octal escape.
func IsOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// IsPrintable returns true for printable, non-whitespace, non-delimiter
// ASCII bytes — the bytes a PDF name can carry unescaped.
func IsPrintable(c byte) bool {
	return c > 0x20 && c < 0x7F && !IsDelimiter(c)
}
