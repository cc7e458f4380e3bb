package asm

import (
	"encoding/binary"
	"fmt"
)

// Opcode is an encoded 16-bit CHIP-8 instruction word.
type Opcode uint16

// Opcode family patterns. Operand fields are OR-ed into the zero nibbles.
const (
	OP_CLS       = 0x00E0 // CLS
	OP_RET       = 0x00EE // RET
	OP_JP        = 0x1000 // JP addr
	OP_CALL      = 0x2000 // CALL addr
	OP_SE_BYTE   = 0x3000 // SE Vx, byte
	OP_SNE_BYTE  = 0x4000 // SNE Vx, byte
	OP_SE_REG    = 0x5000 // SE Vx, Vy
	OP_LD_BYTE   = 0x6000 // LD Vx, byte
	OP_ADD_BYTE  = 0x7000 // ADD Vx, byte
	OP_LD_REG    = 0x8000 // LD Vx, Vy
	OP_OR        = 0x8001 // OR Vx, Vy
	OP_AND       = 0x8002 // AND Vx, Vy
	OP_XOR       = 0x8003 // XOR Vx, Vy
	OP_ADD_REG   = 0x8004 // ADD Vx, Vy
	OP_SUB       = 0x8005 // SUB Vx, Vy
	OP_SHR       = 0x8006 // SHR Vx {, Vy}
	OP_SUBN      = 0x8007 // SUBN Vx, Vy
	OP_SHL       = 0x800E // SHL Vx {, Vy}
	OP_SNE_REG   = 0x9000 // SNE Vx, Vy
	OP_LD_I      = 0xA000 // LD I, addr
	OP_JP_V0     = 0xB000 // JP V0, addr
	OP_RND       = 0xC000 // RND Vx, byte
	OP_DRW       = 0xD000 // DRW Vx, Vy, n
	OP_SKP       = 0xE09E // SKP Vx
	OP_SKNP      = 0xE0A1 // SKNP Vx
	OP_LD_VX_DT  = 0xF007 // LD Vx, DT
	OP_LD_VX_K   = 0xF00A // LD Vx, K
	OP_LD_DT_VX  = 0xF015 // LD DT, Vx
	OP_LD_ST_VX  = 0xF018 // LD ST, Vx
	OP_ADD_I     = 0xF01E // ADD I, Vx
	OP_LD_F_VX   = 0xF029 // LD F, Vx
	OP_LD_B_VX   = 0xF033 // LD B, Vx
	OP_LD_MEM_VX = 0xF055 // LD [I], Vx
	OP_LD_VX_MEM = 0xF065 // LD Vx, [I]
)

// MakeNNN creates an opcode with a 12-bit address field.
func MakeNNN(pattern uint16, nnn uint16) Opcode {
	return Opcode(pattern | (nnn & 0xfff))
}

// MakeX creates an opcode with a register in the x nibble.
func MakeX(pattern uint16, x uint8) Opcode {
	return Opcode(pattern | (uint16(x&0xf) << 8))
}

// MakeXKK creates an opcode with a register and an 8-bit byte.
func MakeXKK(pattern uint16, x uint8, kk uint16) Opcode {
	return Opcode(pattern | (uint16(x&0xf) << 8) | (kk & 0xff))
}

// MakeXY creates an opcode with a register pair.
func MakeXY(pattern uint16, x, y uint8) Opcode {
	return Opcode(pattern | (uint16(x&0xf) << 8) | (uint16(y&0xf) << 4))
}

// MakeXYN creates an opcode with a register pair and a nibble.
func MakeXYN(pattern uint16, x, y uint8, n uint16) Opcode {
	return Opcode(pattern | (uint16(x&0xf) << 8) | (uint16(y&0xf) << 4) | (n & 0xf))
}

// Family returns the top nibble of the opcode.
func (op Opcode) Family() uint8 {
	return uint8((op >> 12) & 0xf)
}

// X returns the x register field.
func (op Opcode) X() uint8 {
	return uint8((op >> 8) & 0xf)
}

// Y returns the y register field.
func (op Opcode) Y() uint8 {
	return uint8((op >> 4) & 0xf)
}

// N returns the low nibble.
func (op Opcode) N() uint8 {
	return uint8(op & 0xf)
}

// KK returns the low byte.
func (op Opcode) KK() uint8 {
	return uint8(op & 0xff)
}

// NNN returns the 12-bit address field.
func (op Opcode) NNN() uint16 {
	return uint16(op & 0xfff)
}

// AppendBinary appends the big-endian encoding of the opcode to b.
func (op Opcode) AppendBinary(b []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint16(b, uint16(op)), nil
}

// Bytes returns the big-endian encoding of the opcode.
func (op Opcode) Bytes() (data [OPCODE_SIZE]byte) {
	binary.BigEndian.PutUint16(data[:], uint16(op))
	return
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}
