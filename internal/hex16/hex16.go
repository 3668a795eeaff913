// Package hex16 converts between hexadecimal strings and 16-bit
// blocks.
package hex16

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates that a string contains a byte that is not
// a hexadecimal digit.
var ErrSyntax = errors.New("hex16: invalid syntax")

// Invalid is the value produced in place of a malformed input
// by ParseLegacy.
const Invalid uint16 = 0xffff

// SyntaxError records the first non-hexadecimal byte of Input.
type SyntaxError struct {
	Input string
	Char  byte
	Pos   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("hex16: invalid character %q at offset %d in %q",
		e.Char, e.Pos, e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Parse parses s as a big-endian sequence of hexadecimal digits.
//
// Both cases are accepted. There is no length limit: each digit
// shifts the accumulated value left by four bits, so only the
// last four digits of a longer string are retained. The empty
// string parses as zero.
func Parse(s string) (uint16, error) {
	var x uint16
	for i := 0; i < len(s); i++ {
		d, ok := digit(s[i])
		if !ok {
			return 0, &SyntaxError{Input: s, Char: s[i], Pos: i}
		}
		x = x<<4 | uint16(d)
	}
	return x, nil
}

// ParseLegacy is like Parse except that a malformed input
// yields Invalid alongside the error instead of zero.
func ParseLegacy(s string) (uint16, error) {
	x, err := Parse(s)
	if err != nil {
		return Invalid, err
	}
	return x, nil
}

func digit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Format returns x as "0X" followed by four upper case digits.
func Format(x uint16) string {
	return fmt.Sprintf("0X%04X", x)
}
