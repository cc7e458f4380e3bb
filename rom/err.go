package rom

import (
	"github.com/ezrec/chip8asm/translate"
)

var (
	ErrRomOdd = translate.Error("rom image has an odd length")
)
