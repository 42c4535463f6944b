package asm

import (
	"github.com/ezrec/hexasm/translate"
)

var f = translate.From

// ErrFormat is a token that is not `<digits><suffix>`, or whose digits
// are not valid in the radix the suffix selects.
type ErrFormat struct {
	Label string // What the token was meant to be, ie "literal value".
	Token string // Token as written in the source.
	Radix bool   // Set if the shape matched but the digits did not.
}

func (err *ErrFormat) Error() string {
	if err.Radix {
		return f("Bad numeric format in '%v'", err.Token)
	}
	return f("Invalid %v '%v': must end with b, d, or h (binary/decimal/hex). Example: 1011b, 11d, 0ah", err.Label, err.Token)
}

// ErrRange is a value that does not fit its field.
type ErrRange struct {
	Label string
	Token string
	Bits  uint
}

func (err *ErrRange) Error() string {
	return f("%v '%v' out of range for %v-bit value (0..%v)", err.Label, err.Token, itoa(uint64(err.Bits)), itoa(maxValue(err.Bits)))
}

// ErrMissingOperand is a packed instruction without its operand.
type ErrMissingOperand string

func (err ErrMissingOperand) Error() string {
	return f("Missing operand for %v", string(err))
}

// ErrMissingLiteral is an immediate instruction at the end of the source.
type ErrMissingLiteral string

func (err ErrMissingLiteral) Error() string {
	return f("Missing literal after %v", string(err))
}

// ErrUnrecognizedToken is a line that is none of blank, data, or instruction.
type ErrUnrecognizedToken string

func (err ErrUnrecognizedToken) Error() string {
	return f("Unrecognized opcode or token: '%v'", string(err))
}

// ErrSyntax locates an error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", itoa(uint64(err.LineNo)), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
