package asm

import (
	"strings"
)

// Shape is how an instruction lays out its operand.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_PACKED    = Shape(0) // packed
	SHAPE_SINGLE    = Shape(1) // single
	SHAPE_IMMEDIATE = Shape(2) // immediate
)

// Opcode nibbles of the target machine.
const (
	OP_LDA = uint(0x1)
	OP_LDB = uint(0x2)
	OP_OUT = uint(0x3)
	OP_SUB = uint(0x4)
	OP_HLT = uint(0x5)
	OP_LDI = uint(0x6)
	OP_STA = uint(0x7)
	OP_CMP = uint(0x8)
	OP_JMP = uint(0x9)
	OP_JNZ = uint(0xa)
	OP_JNC = uint(0xb)
	OP_SFT = uint(0xc)
	OP_RTE = uint(0xd)
)

// Mnemonic is an opcode table entry.
type Mnemonic struct {
	Name   string
	Nibble uint
	Shape  Shape
}

// mnemonicMap is keyed by upper-case mnemonic.
var mnemonicMap = map[string]Mnemonic{
	"LDA": {"LDA", OP_LDA, SHAPE_PACKED},
	"LDB": {"LDB", OP_LDB, SHAPE_PACKED},
	"OUT": {"OUT", OP_OUT, SHAPE_PACKED},
	"SUB": {"SUB", OP_SUB, SHAPE_PACKED},
	"HLT": {"HLT", OP_HLT, SHAPE_SINGLE},
	"LDI": {"LDI", OP_LDI, SHAPE_IMMEDIATE},
	"STA": {"STA", OP_STA, SHAPE_PACKED},
	"CMP": {"CMP", OP_CMP, SHAPE_PACKED},
	"JMP": {"JMP", OP_JMP, SHAPE_PACKED},
	"JNZ": {"JNZ", OP_JNZ, SHAPE_PACKED},
	"JNC": {"JNC", OP_JNC, SHAPE_PACKED},
	"SFT": {"SFT", OP_SFT, SHAPE_PACKED},
	"RTE": {"RTE", OP_RTE, SHAPE_PACKED},
}

// LookupMnemonic finds a mnemonic, ignoring case.
func LookupMnemonic(name string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicMap[strings.ToUpper(name)]
	return
}
