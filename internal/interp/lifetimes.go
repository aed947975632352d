package interp

import (
	"time"

	"github.com/lumina-lang/lumina/pkg/ident"
)

// SyntheticBinding is one retroactive pre-binding produced by a negative
// line-lifetime assignment: at the target execution-line, name is bound to
// the value of expr as though the assignment had already run.
type SyntheticBinding struct {
	Name string
	Expr string
}

// BuildRetroactiveBindings scans the top-level statement list for negative
// line-lifetime assignments and returns, for each execution-line they
// retroactively reach back to, the bindings that must be applied before the
// statement that would normally execute at that line runs.
//
// A lifetime assignment "NAME -k: expr" at the 0-indexed top-level position
// idx executes at line idx+1 (RunProgram advances current_line to idx+1
// before running topLevel[idx]), so def_line = idx+1. It reaches back to
// every execution-line in [max(1, def_line-k), def_line). The statement's
// own occurrence at def_line still binds normally but is immediately
// expired in the same step — see Context.execLifetimeAssign.
func BuildRetroactiveBindings(topLevel []Statement) map[uint64][]SyntheticBinding {
	out := make(map[uint64][]SyntheticBinding)
	for idx, stmt := range topLevel {
		if stmt.Kind != StmtLifetimeAssign || !stmt.Lifetime.Set || stmt.Lifetime.IsSeconds {
			continue
		}
		if stmt.Lifetime.Lines >= 0 {
			continue
		}
		k := uint64(-stmt.Lifetime.Lines)
		defLine := uint64(idx + 1)
		start := uint64(1)
		if defLine > k {
			start = defLine - k
		}
		for line := start; line < defLine; line++ {
			out[line] = append(out[line], SyntheticBinding{Name: stmt.Name, Expr: stmt.Expr})
		}
	}
	return out
}

// applyRetroactive binds every synthetic binding scheduled for nextLine into
// the top-level frame, evaluated fresh against the current context.
func (ctx *Context) applyRetroactive(nextLine uint64) error {
	bindings := ctx.retroactive[nextLine]
	for _, b := range bindings {
		v, err := Evaluate(b.Expr, ctx)
		if err != nil {
			return err
		}
		ctx.CurrentFrame().Assign(b.Name, v)
	}
	return nil
}

// setLineExpiration schedules name to expire once current_line reaches at
// least line, clearing any wall-clock expiration previously set for it.
func (ctx *Context) setLineExpiration(name string, line uint64) {
	ctx.lineExpirations.Set(name, line)
	ctx.clearTimeExpiration(name)
}

// setTimeExpiration schedules name to expire once the wall clock passes
// deadline, clearing any line expiration previously set for it.
func (ctx *Context) setTimeExpiration(name string, deadline time.Time) {
	ctx.clearLineExpiration(name)
	ctx.clearTimeExpiration(name)
	ctx.timeExpirations = append(ctx.timeExpirations, timeExpiration{Name: name, Deadline: deadline})
}

func (ctx *Context) clearLineExpiration(name string) {
	ctx.lineExpirations.Delete(name)
}

func (ctx *Context) clearTimeExpiration(name string) {
	var kept []timeExpiration
	for _, te := range ctx.timeExpirations {
		if !ident.Equal(te.Name, name) {
			kept = append(kept, te)
		}
	}
	ctx.timeExpirations = kept
}

// clearLifetime drops any scheduled expiration for name: a plain assignment
// (no lifetime clause) makes a binding ordinary again.
func (ctx *Context) clearLifetime(name string) {
	ctx.clearLineExpiration(name)
	ctx.clearTimeExpiration(name)
}

// expireVariables sweeps the current frame for variables whose line or
// wall-clock expiration has arrived, removing the binding, its history, and
// any same-named function. Called after every statement executes.
func (ctx *Context) expireVariables() {
	frame := ctx.CurrentFrame()
	now := time.Now()

	var expiredNames []string
	for _, name := range frame.Names() {
		if line, ok := ctx.lineExpirations.Get(name); ok && ctx.currentLine >= line {
			expiredNames = append(expiredNames, name)
			continue
		}
	}
	for _, te := range ctx.timeExpirations {
		if !now.Before(te.Deadline) {
			expiredNames = append(expiredNames, te.Name)
		}
	}

	for _, name := range expiredNames {
		frame.Delete(name)
		ctx.lineExpirations.Delete(name)
		ctx.clearTimeExpiration(name)
		ctx.DeleteFunction(name)
	}
}
