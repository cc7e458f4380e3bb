package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Operand{
		"V0":    {Kind: OPERAND_REGISTER, Text: "V0", Register: 0},
		"vf":    {Kind: OPERAND_REGISTER, Text: "vf", Register: 15},
		"Va":    {Kind: OPERAND_REGISTER, Text: "Va", Register: 10},
		" V7 ":  {Kind: OPERAND_REGISTER, Text: "V7", Register: 7},
		"DT":    {Kind: OPERAND_KEYWORD, Text: "DT", Keyword: KEYWORD_DT},
		"st":    {Kind: OPERAND_KEYWORD, Text: "st", Keyword: KEYWORD_ST},
		"K":     {Kind: OPERAND_KEYWORD, Text: "K", Keyword: KEYWORD_K},
		"f":     {Kind: OPERAND_KEYWORD, Text: "f", Keyword: KEYWORD_F},
		"B":     {Kind: OPERAND_KEYWORD, Text: "B", Keyword: KEYWORD_B},
		"I":     {Kind: OPERAND_KEYWORD, Text: "I", Keyword: KEYWORD_I},
		"[i]":   {Kind: OPERAND_KEYWORD, Text: "[i]", Keyword: KEYWORD_I_INDIRECT},
		"VG":    {Kind: OPERAND_VALUE, Text: "VG"},
		"V10":   {Kind: OPERAND_VALUE, Text: "V10"},
		"0x200": {Kind: OPERAND_VALUE, Text: "0x200"},
		"12":    {Kind: OPERAND_VALUE, Text: "12"},
		"loop":  {Kind: OPERAND_VALUE, Text: "loop"},
	}

	for text, expected := range table {
		op, err := ParseOperand(text)
		assert.NoError(err, text)
		assert.Equal(expected, op, text)
	}

	_, err := ParseOperand("  ")
	assert.ErrorIs(err, ErrOperandEmpty)
}

func TestOperandValue(t *testing.T) {
	assert := assert.New(t)

	symbols := Symbols{"LOOP": 0x20a, "B": 0x300, "123": 0x250}

	table := map[string]uint16{
		"loop":    0x20a,
		"0x1F":    0x1f,
		"0X1f":    0x1f,
		"31":      31,
		"+5":      5,
		"+0":      0,
		"0":       0,
		"65535":   0xffff,
		"B":       0x300,
		"123":     0x250, // labels shadow numbers
		"$(1+2)":  3,
		"$(LOOP)": 0x20a,
	}

	for text, expected := range table {
		op, err := ParseOperand(text)
		assert.NoError(err, text)
		value, err := op.Value(symbols)
		assert.NoError(err, text)
		assert.Equal(expected, value, text)
	}

	errs := map[string]error{
		"V1":    ErrValueWanted,
		"DT":    ErrValueWanted,
		"0x":    ErrParseNumber("0x"),
		"1.5":   ErrParseNumber("1.5"),
		"65536": ErrParseNumber("65536"),
		"+":     ErrParseNumber("+"),
		"++5":   ErrParseNumber("++5"),
		"+0x5":  ErrParseNumber("+0x5"),
		"end":   ErrLabelMissing("END"),
	}

	for text, expected := range errs {
		op, err := ParseOperand(text)
		assert.NoError(err, text)
		_, err = op.Value(symbols)
		assert.ErrorIs(err, expected, text)
	}
}

func TestOperandString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register", OPERAND_REGISTER.String())
	assert.Equal("value", OPERAND_VALUE.String())
	assert.Equal("[I]", KEYWORD_I_INDIRECT.String())
	assert.Equal("DT", KEYWORD_DT.String())
}

func TestSplitInstruction(t *testing.T) {
	assert := assert.New(t)

	mnemonic, operands := splitInstruction("drw v0 ,  v1,5")
	assert.Equal("DRW", mnemonic)
	assert.Equal([]string{"v0", "v1", "5"}, operands)

	mnemonic, operands = splitInstruction("ld v0, $(max(1, 2))")
	assert.Equal("LD", mnemonic)
	assert.Equal([]string{"v0", "$(max(1, 2))"}, operands)

	mnemonic, operands = splitInstruction("drw v0, $(min(4, (3))), $(max(1,2))")
	assert.Equal("DRW", mnemonic)
	assert.Equal([]string{"v0", "$(min(4, (3)))", "$(max(1,2))"}, operands)

	mnemonic, operands = splitInstruction("cls")
	assert.Equal("CLS", mnemonic)
	assert.Nil(operands)

	mnemonic, operands = splitInstruction("ld V0, ")
	assert.Equal("LD", mnemonic)
	assert.Equal([]string{"V0", ""}, operands)
}
