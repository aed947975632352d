package interp

import (
	"fmt"

	"github.com/lumina-lang/lumina/internal/value"
	"github.com/lumina-lang/lumina/pkg/ident"
)

// BuiltinFunc is a built-in call target: it receives the already-evaluated
// argument values and the Context they were evaluated against.
type BuiltinFunc func(ctx *Context, args []value.Value) (value.Value, error)

var builtinNames = []string{"PRINTLINE"}

var builtinTable = map[string]BuiltinFunc{
	"PRINTLINE": builtinPrintLine,
}

// lookupBuiltin resolves name against the built-in table case-insensitively.
func lookupBuiltin(name string) (BuiltinFunc, bool) {
	idx := ident.Index(builtinNames, name)
	if idx < 0 {
		return nil, false
	}
	fn := builtinTable[builtinNames[idx]]
	return fn, true
}

// builtinPrintLine writes each argument's display form on its own line to
// the Context's output writer and returns Number(0). A nil writer discards
// output, matching the reference runtime's test harness convention.
func builtinPrintLine(ctx *Context, args []value.Value) (value.Value, error) {
	if ctx.Output() != nil {
		for _, a := range args {
			fmt.Fprintln(ctx.Output(), a.Stringify())
		}
	}
	return value.NewNumber(0), nil
}
