package asm

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// Opcode is the words emitted on behalf of one source line.
type Opcode struct {
	LineNo int    // 1-based source line.
	Ip     int    // Address of the first word.
	Line   string // Trimmed source text, empty for blank lines.
	Codes  []Word
}

// Program is an assembled memory image with its source map.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that emitted the word at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Words iterates over the image in address order.
func (prog *Program) Words() iter.Seq[Word] {
	return func(yield func(word Word) bool) {
		for _, op := range prog.Opcodes {
			for _, code := range op.Codes {
				if !yield(code) {
					return
				}
			}
		}
	}
}

// Binary returns the image as a slice.
func (prog *Program) Binary() []Word {
	return slices.Collect(prog.Words())
}

// Listing writes one row per emitted word, with its source line.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		for n, code := range op.Codes {
			if n == 0 {
				_, err = fmt.Fprintf(w, "%03x: %v ; %d: %v\n", op.Ip+n, code, op.LineNo, op.Line)
			} else {
				_, err = fmt.Fprintf(w, "%03x: %v\n", op.Ip+n, code)
			}
			if err != nil {
				return
			}
		}
	}

	return
}
