package asm

import (
	"log"
	"regexp"
	"strings"
)

const (
	BASE_ADDRESS = 0x200 // Load address of the first instruction.
	OPCODE_SIZE  = 2     // Bytes per instruction.
)

// Symbols maps upper-case symbol names to 16-bit values.
type Symbols map[string]uint16

// Lookup finds a symbol, ignoring case.
func (sym Symbols) Lookup(name string) (value uint16, ok bool) {
	value, ok = sym[strings.ToUpper(name)]
	return
}

// Label names are letters, digits and underscores, in any script.
var labelPattern = regexp.MustCompile(`^([\p{L}\p{N}_]+):$`)

// LabelOf returns the name a label definition line defines.
// A line with anything after the colon is not a label definition.
func LabelOf(text string) (label string, ok bool) {
	match := labelPattern.FindStringSubmatch(text)
	if match == nil {
		return
	}

	return strings.ToUpper(match[1]), true
}

// Resolve is the first pass. It binds every label to the address of the
// instruction following it, and returns the instruction lines in order.
// Instruction n (0-based) is at BASE_ADDRESS + OPCODE_SIZE*n.
//
// A label defined twice keeps its last address, unless the assembler is
// Strict, where it is an ErrLabelDuplicate.
func (asm *Assembler) Resolve(lines []Line) (instructions []Line, err error) {
	asm.Label = make(Symbols, 16)

	address := uint16(BASE_ADDRESS)
	for _, line := range lines {
		label, ok := LabelOf(line.Text)
		if !ok {
			instructions = append(instructions, line)
			address += OPCODE_SIZE
			continue
		}

		if _, defined := asm.Label[label]; defined && asm.Strict {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: ErrLabelDuplicate}
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v = %#03x\n", line.LineNo, label, address)
		}

		asm.Label[label] = address
	}

	return
}
