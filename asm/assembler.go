// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"math"
	"slices"
	"strings"
)

// Assembler is a single pass assembler for the 10-bit word machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	lines  []string // Source being assembled.
	cursor int      // Index of the next unread line.
}

// splitLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r".
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return
	}

	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0 && atEOF:
		return len(data), data, nil
	case i < 0:
		return
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data) && data[i+1] == '\n':
		return i + 2, data[:i], nil
	case i+1 < len(data) || atEOF:
		return i + 1, data[:i], nil
	}

	// Lone trailing '\r', which may be half of a "\r\n".
	return
}

// Parse reads all of input and assembles it. Lines may be of any length.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, math.MaxInt)
	scanner.Split(splitLines)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble assembles the source lines into a Program.
// Errors are returned as *ErrSyntax, locating the offending line.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err == nil {
			return
		}
		if _, ok := err.(*ErrSyntax); !ok {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.lines = lines
	asm.cursor = 0
	asm.Opcode = asm.Opcode[:0]

	for asm.cursor < len(asm.lines) {
		lineno, line = asm.next()

		err = asm.dispatch(lineno, line)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// currentIp gets the address of the next emitted word.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// next consumes the line at the cursor, returning it trimmed.
func (asm *Assembler) next() (lineno int, line string) {
	line = strings.TrimSpace(asm.lines[asm.cursor])
	asm.cursor++
	lineno = asm.cursor

	if asm.Verbose {
		log.Printf("%v: %v\n", lineno, line)
	}

	return
}

// emit appends a word to the image on behalf of a source line.
func (asm *Assembler) emit(lineno int, line string, word Word) {
	opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Line: line, Codes: []Word{word}}

	if asm.Verbose {
		log.Printf("  %03x: %v\n", opcode.Ip, word)
	}

	asm.Opcode = append(asm.Opcode, opcode)
}

// nextLiteral consumes lines up to and including the next non-blank one,
// which it returns. Every blank line skipped on the way emits a
// placeholder word, exactly as a blank line does in the main loop, so the
// skipped lines keep their addresses.
func (asm *Assembler) nextLiteral(mn Mnemonic) (lineno int, line string, err error) {
	for asm.cursor < len(asm.lines) {
		lineno, line = asm.next()
		if len(line) == 0 {
			asm.emit(lineno, line, WORD_PLACEHOLDER)
			continue
		}
		return
	}

	err = ErrMissingLiteral(mn.Name)

	return
}

// dispatch assembles a single trimmed source line.
func (asm *Assembler) dispatch(lineno int, line string) (err error) {
	if len(line) == 0 {
		asm.emit(lineno, line, WORD_PLACEHOLDER)
		return
	}

	words := strings.Fields(line)

	mn, is_mn := LookupMnemonic(words[0])

	var value uint
	var word Word

	switch {
	case !is_mn && len(words) == 1:
		// Bare data word, bounded to WORD_BITS by ParseLiteral.
		value, err = ParseLiteral(words[0], WORD_BITS, "literal value")
		if err != nil {
			return
		}
		asm.emit(lineno, line, Word(value))
	case !is_mn:
		err = ErrUnrecognizedToken(line)
		return
	case mn.Shape == SHAPE_PACKED:
		if len(words) < 2 {
			err = ErrMissingOperand(mn.Name)
			return
		}
		value, err = ParseLiteral(words[1], OPERAND_BITS, mn.Name+" operand")
		if err != nil {
			return
		}
		word, err = Encode(mn.Nibble, value)
		if err != nil {
			return
		}
		asm.emit(lineno, line, word)
	case mn.Shape == SHAPE_SINGLE:
		word, err = Encode(mn.Nibble, 0)
		if err != nil {
			return
		}
		asm.emit(lineno, line, word)
	case mn.Shape == SHAPE_IMMEDIATE:
		word, err = Encode(mn.Nibble, 0)
		if err != nil {
			return
		}
		asm.emit(lineno, line, word)

		var litno int
		var lit string
		litno, lit, err = asm.nextLiteral(mn)
		if err != nil {
			return
		}

		value, err = ParseLiteral(lit, WORD_BITS, mn.Name+" literal")
		if err != nil {
			err = &ErrSyntax{LineNo: litno, Line: lit, Err: err}
			return
		}
		asm.emit(litno, lit, Word(value))
	}

	return
}
