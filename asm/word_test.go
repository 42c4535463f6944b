package asm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("000", WORD_PLACEHOLDER.String())
	assert.Equal("005", Word(5).String())
	assert.Equal("0c0", Word(0xc0).String())
	assert.Equal("3ff", Word(1023).String())
	assert.Equal("180 005", fmt.Sprintf("%v %v", Word(0x180), Word(5)))
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		nibble  uint
		operand uint
		word    string
	}{
		{OP_LDA, 3, "043"},
		{OP_HLT, 0, "140"},
		{OP_OUT, 0, "0c0"},
		{OP_LDI, 0, "180"},
		{OP_JNZ, 63, "2bf"},
		{OP_RTE, 1, "341"},
		{0, 0, "000"},
		{15, 63, "3ff"},
	}

	for _, entry := range table {
		word, err := Encode(entry.nibble, entry.operand)
		assert.NoError(err)
		assert.Equal(entry.word, word.String())
	}
}

func TestEncode_Range(t *testing.T) {
	assert := assert.New(t)

	var rng *ErrRange

	_, err := Encode(16, 0)
	assert.True(errors.As(err, &rng))
	assert.Equal(uint(OPCODE_BITS), rng.Bits)
	assert.EqualError(err, "Opcode nibble '16' out of range for 4-bit value (0..15)")

	_, err = Encode(0, 64)
	assert.True(errors.As(err, &rng))
	assert.Equal(uint(OPERAND_BITS), rng.Bits)
	assert.EqualError(err, "Operand '64' out of range for 6-bit value (0..63)")
}

func TestEncode_Bijective(t *testing.T) {
	assert := assert.New(t)

	seen := map[Word]bool{}
	for nibble := range uint(16) {
		for operand := range uint(64) {
			word, err := Encode(nibble, operand)
			assert.NoError(err)
			assert.LessOrEqual(uint16(word), uint16(WORD_MASK))
			assert.False(seen[word])
			seen[word] = true
			assert.Equal(nibble, uint(word>>OPERAND_BITS))
			assert.Equal(operand, uint(word&0x3f))
		}
	}
	assert.Equal(1024, len(seen))
}

func FuzzEncode(f *testing.F) {
	f.Add(uint(0), uint(0))
	f.Add(uint(15), uint(63))
	f.Add(uint(16), uint(0))
	f.Add(uint(0), uint(64))

	f.Fuzz(func(t *testing.T, nibble uint, operand uint) {
		assert := assert.New(t)

		word, err := Encode(nibble, operand)
		if nibble > 15 || operand > 63 {
			var rng *ErrRange
			assert.True(errors.As(err, &rng))
			return
		}

		assert.NoError(err)
		assert.Equal(nibble, uint(word>>6))
		assert.Equal(operand, uint(word&0x3f))
		assert.Len(word.String(), 3)
	})
}
