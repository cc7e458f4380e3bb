// Package asm implements a two pass assembler for the CHIP-8 instruction set.
//
// The first pass strips comments and blank lines, binds each label to the
// load address of the instruction that follows it, and collects the
// instruction lines. Instructions are placed two bytes apart starting at
// BASE_ADDRESS (0x200), the address a CHIP-8 interpreter loads programs at.
//
// The second pass encodes every instruction line into one big-endian 16-bit
// opcode. Operands are registers (V0-VF), numbers (decimal or 0x-prefixed
// hexadecimal), symbols, the keywords DT, ST, K, F, B, I and [I], or a
// compile-time $(...) expression evaluated against the symbol table.
package asm
