package asm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("LDA 1h\nLDI\n\n5d\nHLT"))
	if err != nil {
		t.Fatal(err)
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.LineNo)
	assert.Equal("", dbg.Line)

	dbg = prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(4, dbg.LineNo)
	assert.Equal([]Word{5}, dbg.Codes)

	dbg = prog.Debug(4)
	assert.Equal(5, dbg.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Line: "HLT", Codes: []Word{0x140}},
		},
	}

	dbg := prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(-1)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Debug_MultipleCodesPerOpcode(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Line: "1d", Codes: []Word{1, 2, 3}},
		},
	}

	for ip := range 3 {
		dbg := prog.Debug(ip)
		assert.Equal(ip, dbg.Index)
	}

	assert.Equal([]Word{1, 2, 3}, prog.Binary())
}

func TestProgram_Words(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Ip: 0, Codes: []Word{0x180}},
			{LineNo: 2, Ip: 1, Codes: []Word{0x000}},
			{LineNo: 3, Ip: 2, Codes: []Word{0x005}},
		},
	}

	var words []Word
	for word := range prog.Words() {
		words = append(words, word)
		if len(words) == 2 {
			break
		}
	}
	assert.Equal([]Word{0x180, 0x000}, words)
	assert.Equal([]Word{0x180, 0x000, 0x005}, prog.Binary())
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("LDI\n\n5d\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	assert.NoError(prog.Listing(&buf))

	expected := []string{
		"000: 180 ; 1: LDI",
		"001: 000 ; 2: ",
		"002: 005 ; 3: 5d",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buf.String())
}
