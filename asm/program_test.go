package asm

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Instructions: []Instruction{
			{LineNo: 2, Address: 0x200, Text: "LD V0, 5", Opcode: 0x6005},
			{LineNo: 3, Address: 0x202, Text: "ADD V0, V1", Opcode: 0x8014},
			{LineNo: 5, Address: 0x204, Text: "CLS", Opcode: 0x00e0},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0x200)
	assert.NotNil(dbg.Instruction)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(0, dbg.Offset)

	dbg = prog.Debug(0x203)
	assert.NotNil(dbg.Instruction)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(1, dbg.Offset)

	dbg = prog.Debug(0x204)
	assert.Equal("CLS", dbg.Text)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Nil(prog.Debug(0x1fe).Instruction)
	assert.Nil(prog.Debug(0x206).Instruction)
	assert.Nil((&Program{}).Debug(0x200).Instruction)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal([]byte{0x60, 0x05, 0x80, 0x14, 0x00, 0xe0}, prog.Binary())
	assert.Equal(map[uint16]Opcode{
		0x200: 0x6005,
		0x202: 0x8014,
		0x204: 0x00e0,
	}, maps.Collect(prog.Opcodes()))
}
