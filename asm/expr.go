package asm

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evaluate does compile-time $(...) evaluations. Every symbol is bound
// under its upper and lower case name.
func evaluate(expr string, symbols Symbols) (value uint16, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := make(starlark.StringDict, 2*len(symbols))
	for name, sym := range symbols {
		pred[name] = starlark.MakeInt(int(sym))
		pred[strings.ToLower(name)] = starlark.MakeInt(int(sym))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}

	value = uint16(st_int64)

	return
}
