package asm

import (
	"iter"
)

// Instruction is an assembled instruction line.
type Instruction struct {
	LineNo  int    // 1-based source line number.
	Address uint16 // Load address.
	Text    string // Source text.
	Opcode  Opcode
}

type Program struct {
	Instructions []Instruction
}

// Debug locates the instruction covering a load address.
type Debug struct {
	*Instruction
	Offset int // Byte offset of the address within the opcode.
}

func (prog *Program) Debug(address uint16) (dbg Debug) {
	if address < BASE_ADDRESS {
		return
	}

	index := int(address-BASE_ADDRESS) / OPCODE_SIZE
	if index >= len(prog.Instructions) {
		return
	}

	dbg = Debug{
		Instruction: &prog.Instructions[index],
		Offset:      int(address-BASE_ADDRESS) % OPCODE_SIZE,
	}

	return
}

// Binary returns the ROM image: every opcode big-endian, in source order.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, OPCODE_SIZE*len(prog.Instructions))
	for _, opcode := range prog.Opcodes() {
		bin, _ = opcode.AppendBinary(bin)
	}

	return
}

// Opcodes iterates over the load address and opcode of every instruction.
func (prog *Program) Opcodes() iter.Seq2[uint16, Opcode] {
	return func(yield func(address uint16, opcode Opcode) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Address, inst.Opcode) {
				return
			}
		}
	}
}
