package asm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// OperandKind is the kind of an operand.
type OperandKind int

const (
	OPERAND_REGISTER = OperandKind(0) // register
	OPERAND_KEYWORD  = OperandKind(1) // keyword
	OPERAND_VALUE    = OperandKind(2) // value
)

func (kind OperandKind) String() string {
	switch kind {
	case OPERAND_REGISTER:
		return "register"
	case OPERAND_KEYWORD:
		return "keyword"
	case OPERAND_VALUE:
		return "value"
	}
	return "OperandKind(" + strconv.Itoa(int(kind)) + ")"
}

// Keyword is a pseudo-operand selecting an alternate opcode family.
type Keyword int

const (
	KEYWORD_DT         = Keyword(0) // DT
	KEYWORD_ST         = Keyword(1) // ST
	KEYWORD_K          = Keyword(2) // K
	KEYWORD_F          = Keyword(3) // F
	KEYWORD_B          = Keyword(4) // B
	KEYWORD_I          = Keyword(5) // I
	KEYWORD_I_INDIRECT = Keyword(6) // [I]
)

// keywordMap maps upper-case keyword text to keywords.
var keywordMap = map[string]Keyword{
	"DT":  KEYWORD_DT,
	"ST":  KEYWORD_ST,
	"K":   KEYWORD_K,
	"F":   KEYWORD_F,
	"B":   KEYWORD_B,
	"I":   KEYWORD_I,
	"[I]": KEYWORD_I_INDIRECT,
}

func (kw Keyword) String() string {
	for text, keyword := range keywordMap {
		if keyword == kw {
			return text
		}
	}
	return "Keyword(" + strconv.Itoa(int(kw)) + ")"
}

// Operand is a classified operand. Register is set for OPERAND_REGISTER,
// Keyword for OPERAND_KEYWORD. OPERAND_VALUE operands are resolved from
// Text once the symbol table is complete.
type Operand struct {
	Kind     OperandKind
	Text     string
	Register uint8
	Keyword  Keyword
}

var registerPattern = regexp.MustCompile(`(?i)^V[0-9A-F]$`)

// ParseOperand classifies an operand.
func ParseOperand(text string) (op Operand, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrOperandEmpty
		return
	}

	op.Text = text

	if registerPattern.MatchString(text) {
		// The pattern guarantees a single hex digit.
		index, _ := strconv.ParseUint(text[1:], 16, 4)
		op.Kind = OPERAND_REGISTER
		op.Register = uint8(index)
		return
	}

	keyword, ok := keywordMap[strings.ToUpper(text)]
	if ok {
		op.Kind = OPERAND_KEYWORD
		op.Keyword = keyword
		return
	}

	op.Kind = OPERAND_VALUE

	return
}

// IsRegister returns true if the operand names a register.
func (op Operand) IsRegister() bool {
	return op.Kind == OPERAND_REGISTER
}

// Is returns true if the operand is the keyword kw.
func (op Operand) Is(kw Keyword) bool {
	return op.Kind == OPERAND_KEYWORD && op.Keyword == kw
}

// Value resolves the operand to an unsigned value. Symbols are tried
// first, then $(...) expressions, then 0x-prefixed hexadecimal and
// decimal numbers. A keyword is only a value when a symbol of the same
// name exists.
func (op Operand) Value(symbols Symbols) (value uint16, err error) {
	switch op.Kind {
	case OPERAND_REGISTER:
		err = ErrValueWanted
		return
	case OPERAND_KEYWORD:
		value, ok := symbols.Lookup(op.Text)
		if !ok {
			return 0, ErrValueWanted
		}
		return value, nil
	}

	text := op.Text

	value, ok := symbols.Lookup(text)
	if ok {
		return
	}

	if strings.HasPrefix(text, "$(") && strings.HasSuffix(text, ")") {
		value, err = evaluate(text[2:len(text)-1], symbols)
		return
	}

	return valueOf(text)
}

// valueOf parses a decimal or 0x-prefixed hexadecimal number. Words
// that could only be symbol names report ErrLabelMissing.
func valueOf(text string) (value uint16, err error) {
	var v64 uint64

	upper := strings.ToUpper(text)
	if strings.HasPrefix(upper, "0X") {
		v64, err = strconv.ParseUint(upper[2:], 16, 16)
	} else {
		v64, err = strconv.ParseUint(strings.TrimPrefix(upper, "+"), 10, 16)
	}
	if err != nil {
		if isIdentifier(upper) {
			err = ErrLabelMissing(upper)
		} else {
			err = ErrParseNumber(text)
		}
		return
	}

	value = uint16(v64)

	return
}

// isIdentifier returns true for word characters not starting with a digit.
func isIdentifier(word string) bool {
	for n, r := range word {
		switch {
		case r == '_', unicode.IsLetter(r):
		case n > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return len(word) > 0
}

// splitInstruction splits an instruction line into its upper-case
// mnemonic and its comma separated operand texts. Commas inside
// parentheses, as in $(max(a, b)), do not separate operands.
func splitInstruction(text string) (mnemonic string, operands []string) {
	text = strings.TrimSpace(text)
	index := strings.IndexFunc(text, unicode.IsSpace)
	if index < 0 {
		return strings.ToUpper(text), nil
	}

	mnemonic = strings.ToUpper(text[:index])
	rest := strings.TrimSpace(text[index:])
	if len(rest) == 0 {
		return
	}

	depth := 0
	start := 0
	for n, r := range rest {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				operands = append(operands, strings.TrimSpace(rest[start:n]))
				start = n + 1
			}
		}
	}
	operands = append(operands, strings.TrimSpace(rest[start:]))

	return
}
