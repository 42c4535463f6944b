package asm

import (
	"fmt"
)

// Word is a 10-bit machine word.
type Word uint16

// WORD_PLACEHOLDER is emitted for every blank source line.
const WORD_PLACEHOLDER = Word(0)

const WORD_MASK = Word(1<<WORD_BITS) - 1

// String returns the word as three lowercase hex digits.
func (word Word) String() string {
	return fmt.Sprintf("%03x", uint16(word))
}

// Encode packs an opcode nibble and a 6-bit operand into a word.
func Encode(nibble, operand uint) (word Word, err error) {
	if nibble > uint(maxValue(OPCODE_BITS)) {
		err = &ErrRange{Label: "Opcode nibble", Token: itoa(uint64(nibble)), Bits: OPCODE_BITS}
		return
	}
	if operand > uint(maxValue(OPERAND_BITS)) {
		err = &ErrRange{Label: "Operand", Token: itoa(uint64(operand)), Bits: OPERAND_BITS}
		return
	}

	word = Word((nibble << OPERAND_BITS) | operand)

	return
}
