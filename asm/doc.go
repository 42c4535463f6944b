// Package asm implements the assembler for a 10-bit word machine with a
// 4-bit opcode and a 6-bit operand.
//
// Each source line is blank, a bare data word, or an instruction. Blank
// lines emit a 000 placeholder word. Numeric literals carry a radix
// suffix: 1011b, 11d, 0ah. Packed instructions (LDA 3h) encode their
// operand into the instruction word, HLT has no operand, and LDI takes a
// full 10-bit literal from the next non-blank line:
//
//	LDI
//	5d
//
// assembles to 180 005.
package asm
