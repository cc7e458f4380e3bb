package asm

import (
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

var (
	// Pass 1 errors
	ErrLabelDuplicate = translate.Error("label duplicated")
	ErrDefineSyntax   = translate.Error("define syntax")

	// Pass 2 errors
	ErrMnemonicInvalid = translate.Error("unknown mnemonic")
	ErrOperandMissing  = translate.Error("operand missing")
	ErrOperandExcess   = translate.Error("excessive operands")
	ErrOperandEmpty    = translate.Error("empty operand")
	ErrRegisterWanted  = translate.Error("register expected")
	ErrValueWanted     = translate.Error("value expected")
	ErrKeywordInvalid  = translate.Error("keyword invalid")
	ErrTargetInvalid   = translate.Error("target invalid")
	ErrJumpRegister    = translate.Error("jump offset register must be V0")
)

// ErrMnemonic reports an unknown mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown mnemonic %v", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrMnemonicInvalid
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrOperand locates a failure at a 1-based operand position.
type ErrOperand struct {
	Index int
	Text  string
	Err   error
}

func (err ErrOperand) Error() string {
	return f("operand %d '%v' %v", err.Index, err.Text, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembly failure at a source line.
type ErrSyntax struct {
	LineNo int    // 1-based line number in the source.
	Line   string // Source text, without comment or surrounding space.
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
