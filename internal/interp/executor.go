package interp

import (
	"time"

	lerr "github.com/lumina-lang/lumina/internal/errors"
	"github.com/lumina-lang/lumina/internal/lexer"
	"github.com/lumina-lang/lumina/internal/value"
)

// returnControl is not a true error: it is how RETURN unwinds the Go call
// stack back to whichever boundary catches it — a user-function call frame,
// or the top-level loop. ExecuteStatement's callers type-assert for it.
type returnControl struct {
	Value value.Value
}

func (r *returnControl) Error() string { return "return" }

// Run parses source and drives the top-level executor to completion,
// returning the final last_return value and any fatal error.
func Run(ctx *Context, source string) (value.Value, error) {
	topLevel, err := Parse(source)
	if err != nil {
		return value.Value{}, err
	}
	return RunProgram(ctx, topLevel)
}

// RunProgram drives the top-level instruction pointer over an already
// parsed statement list per spec §4.4: start at 0 (or len-1 if reverse is
// already set), apply any retroactive synthetic bindings due this step,
// execute, then move by +1/-1 according to the current reverse flag.
func RunProgram(ctx *Context, topLevel []Statement) (value.Value, error) {
	ctx.retroactive = BuildRetroactiveBindings(topLevel)

	n := len(topLevel)
	if n == 0 {
		return ctx.LastReturn(), nil
	}

	ip := 0
	if ctx.reverse {
		ip = n - 1
	}

	for ip >= 0 && ip < n {
		nextLine := ctx.currentLine + 1
		if err := ctx.applyRetroactive(nextLine); err != nil {
			return value.Value{}, err
		}

		err := ctx.ExecuteStatement(&topLevel[ip])
		if err != nil {
			if rc, ok := err.(*returnControl); ok {
				ctx.lastReturn = rc.Value
				return ctx.lastReturn, nil
			}
			return value.Value{}, err
		}

		if ctx.reverse {
			ip--
		} else {
			ip++
		}
	}
	return ctx.LastReturn(), nil
}

// ExecuteStatement runs one statement: a disabled-token check on its
// keyword, the kind-specific effect, then the current_line increment and
// lifetime expiry sweep that every statement — top-level or nested —
// participates in.
func (ctx *Context) ExecuteStatement(stmt *Statement) error {
	kw := stmt.Keyword()
	if kw != "" && ctx.IsDisabled(kw) {
		return lerr.NewDisabledToken(kw).AtLine(stmt.Line)
	}

	var err error
	switch stmt.Kind {
	case StmtAssign:
		err = ctx.execAssign(stmt)
	case StmtLifetimeAssign:
		err = ctx.execLifetimeAssign(stmt)
	case StmtInlineCall:
		err = ctx.execInlineCall(stmt)
	case StmtDelete:
		err = ctx.execDelete(stmt)
	case StmtPrevious:
		err = ctx.execPrevious(stmt)
	case StmtReturn:
		err = ctx.execReturn(stmt)
	case StmtReverse:
		ctx.execReverse()
	case StmtIf:
		err = ctx.execIf(stmt)
	case StmtWhile:
		err = ctx.execWhile(stmt)
	case StmtFuncDef:
		ctx.execFuncDef(stmt)
	case StmtImport:
		ctx.execImport(stmt)
	}

	if err != nil {
		if _, ok := err.(*returnControl); !ok {
			return err
		}
	}

	ctx.currentLine++
	ctx.expireVariables()
	return err
}

func (ctx *Context) execAssign(stmt *Statement) error {
	v, err := Evaluate(stmt.Expr, ctx)
	if err != nil {
		return err
	}
	ctx.CurrentFrame().Assign(stmt.Name, v)
	ctx.clearLifetime(stmt.Name)
	return nil
}

func (ctx *Context) execLifetimeAssign(stmt *Statement) error {
	v, err := Evaluate(stmt.Expr, ctx)
	if err != nil {
		return err
	}
	pre := ctx.currentLine
	ctx.CurrentFrame().Assign(stmt.Name, v)

	lt := stmt.Lifetime
	switch {
	case lt.IsSeconds:
		if lt.Seconds == 0 {
			ctx.clearLifetime(stmt.Name)
		} else {
			deadline := time.Now().Add(time.Duration(lt.Seconds * float64(time.Second)))
			ctx.setTimeExpiration(stmt.Name, deadline)
		}
	case lt.Lines > 0:
		ctx.setLineExpiration(stmt.Name, pre+uint64(lt.Lines)+1)
	case lt.Lines < 0:
		// Retroactive form: the synthetic earlier bindings carry the value
		// backwards (see BuildRetroactiveBindings); the original occurrence
		// expires itself in this very step's sweep.
		ctx.setLineExpiration(stmt.Name, pre+1)
	default:
		ctx.clearLifetime(stmt.Name)
	}
	return nil
}

func (ctx *Context) execInlineCall(stmt *Statement) error {
	tokens, err := lexer.Tokenize(stmt.Expr)
	if err != nil {
		return err
	}
	var args []value.Value
	for _, argTokens := range SplitArgs(tokens) {
		v, err := EvaluateTokens(argTokens, ctx)
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	result, err := ctx.ExternalCall(stmt.CallName, args)
	if err != nil {
		return err
	}
	ctx.lastReturn = result
	return nil
}

// ExternalCall resolves and invokes name per the dispatch order of §4.3:
// built-in table, then the user-function registry (a fresh frame, body
// executed, any Return absorbed at this boundary), then the FFI resolver.
func (ctx *Context) ExternalCall(name string, args []value.Value) (value.Value, error) {
	if fn, ok := lookupBuiltin(name); ok {
		return fn(ctx, args)
	}
	if fn, ok := ctx.LookupFunction(name); ok {
		return ctx.callFunction(fn)
	}
	if callable, ok := ctx.ffiResolver.Resolve(name); ok {
		return callable.Call(args)
	}
	return value.Value{}, lerr.NewUnknownFunction(name)
}

// callFunction executes fn's body in a fresh frame. Arguments are not bound
// to anything inside the body — per the reference runtime, the arg stack
// is never popped by user functions. A Return statement inside the body is
// absorbed here rather than propagated further.
func (ctx *Context) callFunction(fn *Function) (value.Value, error) {
	ctx.PushFrame()
	defer ctx.PopFrame()

	result := value.NewNumber(0)
	for i := range fn.Body {
		err := ctx.ExecuteStatement(&fn.Body[i])
		if err != nil {
			if rc, ok := err.(*returnControl); ok {
				result = rc.Value
				break
			}
			return value.Value{}, err
		}
	}
	return result, nil
}

func (ctx *Context) execDelete(stmt *Statement) error {
	name := stmt.Token
	if ctx.CurrentFrame().Has(name) {
		ctx.CurrentFrame().Delete(name)
		ctx.clearLifetime(name)
		return nil
	}
	ctx.DeleteFunction(name)
	ctx.Disable(name)
	return nil
}

func (ctx *Context) execPrevious(stmt *Statement) error {
	_, ok := ctx.CurrentFrame().PopPrevious(stmt.Name)
	if !ok {
		return lerr.NewNoPrevious(stmt.Name)
	}
	return nil
}

func (ctx *Context) execReturn(stmt *Statement) error {
	if stmt.Expr == "" {
		return &returnControl{Value: value.NewNumber(0)}
	}
	v, err := Evaluate(stmt.Expr, ctx)
	if err != nil {
		return err
	}
	return &returnControl{Value: v}
}

// execReverse toggles the direction flag only at the top level; inside a
// function call it is a documented no-op.
func (ctx *Context) execReverse() {
	if len(ctx.frames) == 1 {
		ctx.reverse = !ctx.reverse
	}
}

func (ctx *Context) execIf(stmt *Statement) error {
	ok, err := ctx.evalCondition(&stmt.Cond)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return ctx.execBody(stmt.Body)
}

func (ctx *Context) execWhile(stmt *Statement) error {
	for {
		ok, err := ctx.evalCondition(&stmt.Cond)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := ctx.execBody(stmt.Body); err != nil {
			return err
		}
	}
}

// execBody runs a block's statements in order, propagating a Return signal
// unchanged so it keeps unwinding toward its call or top-level boundary.
func (ctx *Context) execBody(body []Statement) error {
	for i := range body {
		if err := ctx.ExecuteStatement(&body[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *Context) evalCondition(c *Condition) (bool, error) {
	if c.Binary {
		lv, err := Evaluate(c.Left, ctx)
		if err != nil {
			return false, err
		}
		rv, err := Evaluate(c.Right, ctx)
		if err != nil {
			return false, err
		}
		cmp, err := lv.Compare(rv)
		if err != nil {
			return false, err
		}
		return compareWith(c.CmpOp, cmp), nil
	}
	v, err := Evaluate(c.Expr, ctx)
	if err != nil {
		return false, err
	}
	return v.Truthy(), nil
}

func (ctx *Context) execFuncDef(stmt *Statement) {
	ctx.DefineFunction(&Function{Name: stmt.FuncName, Body: stmt.Body})
}

func (ctx *Context) execImport(stmt *Statement) {
	ctx.ffiRegistry.Register(stmt.ImportPath)
}
