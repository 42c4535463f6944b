package asm

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Widths of the fields a literal may land in.
const (
	OPCODE_BITS  = 4
	OPERAND_BITS = 6
	WORD_BITS    = 10
)

// literalRe is the `<digits><suffix>` shape, checked before the radix.
var literalRe = regexp.MustCompile(`^[0-9a-f]+[bdh]$`)

// radixMap maps literal suffixes to their base.
var radixMap = map[byte]int{
	'b': 2,
	'd': 10,
	'h': 16,
}

// ParseLiteral parses a radix-suffixed literal such as 1011b, 11d or 0ah,
// and checks that it fits in bits. label names the literal in errors.
func ParseLiteral(token string, bits uint, label string) (value uint, err error) {
	tok := strings.ToLower(strings.TrimSpace(token))

	if !literalRe.MatchString(tok) {
		err = &ErrFormat{Label: label, Token: token}
		return
	}

	digits, suffix := tok[:len(tok)-1], tok[len(tok)-1]

	v64, err := strconv.ParseUint(digits, radixMap[suffix], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = &ErrRange{Label: label, Token: token, Bits: bits}
		} else {
			err = &ErrFormat{Label: label, Token: token, Radix: true}
		}
		return
	}

	if v64 > maxValue(bits) {
		err = &ErrRange{Label: label, Token: token, Bits: bits}
		return
	}

	value = uint(v64)

	return
}

// maxValue is the largest value that fits in bits.
func maxValue(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

func itoa(value uint64) string {
	return strconv.FormatUint(value, 10)
}
