// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/chip8asm/internal"
)

// Predefined system symbols
var sysSymbol = Symbols{
	"BASE": BASE_ADDRESS,
}

// Assembler is a two pass assembler for the CHIP-8 instruction set.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Strict  bool    // If set, a label defined twice is an error.
	Label   Symbols // Map of labels to load addresses, from the last Parse.

	predefine Symbols // Predefines
}

// Predefine defines a new symbol or redefines an existing one.
// Labels of the same name take precedence.
func (asm *Assembler) Predefine(name string, value uint16) {
	if asm.predefine == nil {
		asm.predefine = make(Symbols)
	}
	asm.predefine[strings.ToUpper(name)] = value
}

// Define parses a NAME=VALUE definition, where VALUE is a decimal or
// 0x-prefixed hexadecimal number.
func (asm *Assembler) Define(def string) (err error) {
	name, text, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || !isIdentifier(name) {
		err = ErrDefineSyntax
		return
	}

	text = strings.TrimSpace(text)
	value, err := valueOf(text)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	asm.Predefine(name, value)

	return
}

// Symbols returns an iterator over the system symbols, the predefines,
// and the labels, in that order. Later entries shadow earlier ones.
func (asm *Assembler) Symbols() iter.Seq2[string, uint16] {
	return internal.IterSeq2Concat(maps.All(sysSymbol),
		maps.All(asm.predefine),
		maps.All(asm.Label),
	)
}

// Parse assembles an input stream into a Program. Assembly stops at the
// first error, no Program is returned, and an assembly error is an
// *ErrSyntax locating the offending line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := ReadLines(input)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, line := range lines {
			log.Printf("%v: %v\n", line.LineNo, line.Text)
		}
	}

	instructions, err := asm.Resolve(lines)
	if err != nil {
		return
	}

	symbols := maps.Collect(asm.Symbols())

	program := &Program{
		Instructions: make([]Instruction, 0, len(instructions)),
	}

	for n, line := range instructions {
		var opcode Opcode
		opcode, err = Encode(line.Text, symbols)
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}

		address := uint16(BASE_ADDRESS + OPCODE_SIZE*n)
		if asm.Verbose {
			log.Printf("%#03x: %v %v\n", address, opcode, line.Text)
		}

		program.Instructions = append(program.Instructions, Instruction{
			LineNo:  line.LineNo,
			Address: address,
			Text:    line.Text,
			Opcode:  opcode,
		})
	}

	prog = program

	return
}
