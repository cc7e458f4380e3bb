package asm

// operands holds the classified operands of one instruction line.
type operands struct {
	symbols Symbols
	ops     []Operand
}

// count checks the number of operands.
func (args *operands) count(least, most int) (err error) {
	switch {
	case len(args.ops) < least:
		err = ErrOperandMissing
	case len(args.ops) > most:
		err = ErrOperandExcess
	}
	return
}

func (args *operands) fail(n int, err error) error {
	return &ErrOperand{Index: n + 1, Text: args.ops[n].Text, Err: err}
}

// register returns the register index of operand n.
func (args *operands) register(n int) (reg uint8, err error) {
	op := args.ops[n]
	if !op.IsRegister() {
		err = args.fail(n, ErrRegisterWanted)
		return
	}
	reg = op.Register
	return
}

// value resolves operand n to a number.
func (args *operands) value(n int) (value uint16, err error) {
	value, err = args.ops[n].Value(args.symbols)
	if err != nil {
		err = args.fail(n, err)
	}
	return
}

// encodeFunc encodes the operands of one mnemonic.
type encodeFunc func(args *operands) (Opcode, error)

// mnemonicMap is the dispatch table of every mnemonic.
var mnemonicMap = map[string]encodeFunc{
	"CLS":  encodeFixed(OP_CLS),
	"RET":  encodeFixed(OP_RET),
	"JP":   encodeJP,
	"CALL": encodeAddr(OP_CALL),
	"SE":   encodeSkip(OP_SE_REG, OP_SE_BYTE),
	"SNE":  encodeSkip(OP_SNE_REG, OP_SNE_BYTE),
	"LD":   encodeLD,
	"ADD":  encodeADD,
	"OR":   encodeXY(OP_OR),
	"AND":  encodeXY(OP_AND),
	"XOR":  encodeXY(OP_XOR),
	"SUB":  encodeXY(OP_SUB),
	"SUBN": encodeXY(OP_SUBN),
	"SHR":  encodeShift(OP_SHR),
	"SHL":  encodeShift(OP_SHL),
	"RND":  encodeXKK(OP_RND),
	"DRW":  encodeDRW,
	"SKP":  encodeX(OP_SKP),
	"SKNP": encodeX(OP_SKNP),
}

// Encode is the second pass for a single instruction line. It returns
// exactly one opcode, or the first error found.
func Encode(text string, symbols Symbols) (opcode Opcode, err error) {
	mnemonic, words := splitInstruction(text)

	encode, ok := mnemonicMap[mnemonic]
	if !ok {
		err = ErrMnemonic(mnemonic)
		return
	}

	args := &operands{symbols: symbols, ops: make([]Operand, len(words))}
	for n, word := range words {
		args.ops[n], err = ParseOperand(word)
		if err != nil {
			err = &ErrOperand{Index: n + 1, Text: word, Err: err}
			return
		}
	}

	return encode(args)
}

func encodeFixed(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(0, 0); err != nil {
			return
		}
		opcode = Opcode(pattern)
		return
	}
}

func encodeAddr(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(1, 1); err != nil {
			return
		}
		addr, err := args.value(0)
		if err != nil {
			return
		}
		opcode = MakeNNN(pattern, addr)
		return
	}
}

func encodeX(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(1, 1); err != nil {
			return
		}
		x, err := args.register(0)
		if err != nil {
			return
		}
		opcode = MakeX(pattern, x)
		return
	}
}

func encodeXY(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(2, 2); err != nil {
			return
		}
		x, err := args.register(0)
		if err != nil {
			return
		}
		y, err := args.register(1)
		if err != nil {
			return
		}
		opcode = MakeXY(pattern, x, y)
		return
	}
}

func encodeXKK(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(2, 2); err != nil {
			return
		}
		x, err := args.register(0)
		if err != nil {
			return
		}
		kk, err := args.value(1)
		if err != nil {
			return
		}
		opcode = MakeXKK(pattern, x, kk)
		return
	}
}

// encodeShift accepts both SHx Vx and SHx Vx, Vy.
func encodeShift(pattern uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(1, 2); err != nil {
			return
		}
		if len(args.ops) == 2 {
			return encodeXY(pattern)(args)
		}
		x, err := args.register(0)
		if err != nil {
			return
		}
		opcode = MakeX(pattern, x)
		return
	}
}

// encodeSkip picks the register pair or the byte form by the second operand.
func encodeSkip(patternReg, patternByte uint16) encodeFunc {
	return func(args *operands) (opcode Opcode, err error) {
		if err = args.count(2, 2); err != nil {
			return
		}
		if args.ops[1].IsRegister() {
			return encodeXY(patternReg)(args)
		}
		return encodeXKK(patternByte)(args)
	}
}

// encodeJP handles JP addr and JP V0, addr.
func encodeJP(args *operands) (opcode Opcode, err error) {
	if err = args.count(1, 2); err != nil {
		return
	}

	if len(args.ops) == 1 {
		return encodeAddr(OP_JP)(args)
	}

	x, err := args.register(0)
	if err != nil {
		return
	}
	if x != 0 {
		err = args.fail(0, ErrJumpRegister)
		return
	}
	addr, err := args.value(1)
	if err != nil {
		return
	}
	opcode = MakeNNN(OP_JP_V0, addr)
	return
}

// ldFromMap maps LD Vx, <keyword> forms.
var ldFromMap = map[Keyword]uint16{
	KEYWORD_DT:         OP_LD_VX_DT,
	KEYWORD_K:          OP_LD_VX_K,
	KEYWORD_I_INDIRECT: OP_LD_VX_MEM,
}

// ldToMap maps LD <keyword>, Vx forms.
var ldToMap = map[Keyword]uint16{
	KEYWORD_DT:         OP_LD_DT_VX,
	KEYWORD_ST:         OP_LD_ST_VX,
	KEYWORD_F:          OP_LD_F_VX,
	KEYWORD_B:          OP_LD_B_VX,
	KEYWORD_I_INDIRECT: OP_LD_MEM_VX,
}

// encodeLD selects among the LD forms by the kinds of both operands.
func encodeLD(args *operands) (opcode Opcode, err error) {
	if err = args.count(2, 2); err != nil {
		return
	}

	dst, src := args.ops[0], args.ops[1]

	switch dst.Kind {
	case OPERAND_REGISTER:
		switch src.Kind {
		case OPERAND_REGISTER:
			opcode = MakeXY(OP_LD_REG, dst.Register, src.Register)
			return
		case OPERAND_KEYWORD:
			pattern, ok := ldFromMap[src.Keyword]
			if ok {
				opcode = MakeX(pattern, dst.Register)
				return
			}
		}
		return encodeXKK(OP_LD_BYTE)(args)
	case OPERAND_KEYWORD:
		if dst.Keyword == KEYWORD_I {
			var addr uint16
			addr, err = args.value(1)
			if err != nil {
				return
			}
			opcode = MakeNNN(OP_LD_I, addr)
			return
		}
		pattern, ok := ldToMap[dst.Keyword]
		if !ok {
			err = args.fail(0, ErrKeywordInvalid)
			return
		}
		var x uint8
		x, err = args.register(1)
		if err != nil {
			return
		}
		opcode = MakeX(pattern, x)
		return
	}

	err = args.fail(0, ErrTargetInvalid)
	return
}

// encodeADD handles ADD I, Vx, ADD Vx, Vy and ADD Vx, byte.
func encodeADD(args *operands) (opcode Opcode, err error) {
	if err = args.count(2, 2); err != nil {
		return
	}

	if args.ops[0].Is(KEYWORD_I) {
		var x uint8
		x, err = args.register(1)
		if err != nil {
			return
		}
		opcode = MakeX(OP_ADD_I, x)
		return
	}

	if args.ops[1].IsRegister() {
		return encodeXY(OP_ADD_REG)(args)
	}

	return encodeXKK(OP_ADD_BYTE)(args)
}

func encodeDRW(args *operands) (opcode Opcode, err error) {
	if err = args.count(3, 3); err != nil {
		return
	}
	x, err := args.register(0)
	if err != nil {
		return
	}
	y, err := args.register(1)
	if err != nil {
		return
	}
	n, err := args.value(2)
	if err != nil {
		return
	}
	opcode = MakeXYN(OP_DRW, x, y, n)
	return
}
