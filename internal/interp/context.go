package interp

import (
	"io"
	"math/rand"
	"time"

	"github.com/lumina-lang/lumina/internal/ffi"
	"github.com/lumina-lang/lumina/internal/value"
	"github.com/lumina-lang/lumina/pkg/ident"
)

// timeExpiration is a scheduled wall-clock deadline for one variable.
type timeExpiration struct {
	Name     string
	Deadline time.Time
}

// Context aggregates all interpreter state for a single run: the frame
// stack, the disabled-token set, loaded FFI handles, the user-function
// registry, lifetime bookkeeping, and the top-level reverse/line counters.
type Context struct {
	frames    []*Frame
	disabled  *ident.Map[struct{}]
	functions *ident.Map[*Function]

	ffiResolver ffi.Resolver
	ffiRegistry *ffi.Registry

	reverse     bool
	currentLine uint64
	lastReturn  value.Value

	lineExpirations *ident.Map[uint64]
	timeExpirations []timeExpiration

	output io.Writer
	rng    *rand.Rand

	retroactive map[uint64][]SyntheticBinding
}

// Options configures a new Context. A zero Options is valid: a nil Output
// discards PRINTLINE output, a nil RNG falls back to the package-level
// math/rand functions, and a nil Resolver becomes a no-op FFI resolver.
type Options struct {
	Output   io.Writer
	Resolver ffi.Resolver
	RNG      *rand.Rand
}

// NewContext creates a Context with a single top-level frame pushed.
func NewContext(opts Options) *Context {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = ffi.NoopResolver{}
	}
	ctx := &Context{
		frames:          []*Frame{NewFrame()},
		disabled:        ident.NewMap[struct{}](),
		functions:       ident.NewMap[*Function](),
		ffiResolver:     resolver,
		ffiRegistry:     ffi.NewRegistry(),
		lineExpirations: ident.NewMap[uint64](),
		output:          opts.Output,
		rng:             opts.RNG,
		lastReturn:      value.NewNumber(0),
	}
	return ctx
}

// CurrentFrame returns the active call frame: the top of the frame stack.
func (ctx *Context) CurrentFrame() *Frame {
	return ctx.frames[len(ctx.frames)-1]
}

// PushFrame pushes a fresh, empty frame for a function call.
func (ctx *Context) PushFrame() {
	ctx.frames = append(ctx.frames, NewFrame())
}

// PopFrame pops the active call frame.
func (ctx *Context) PopFrame() {
	ctx.frames = ctx.frames[:len(ctx.frames)-1]
}

// IsDisabled reports whether token has been removed from the language by
// DELETE, case-insensitively.
func (ctx *Context) IsDisabled(token string) bool {
	return ctx.disabled.Has(token)
}

// Disable adds token to the disabled-token set. There is no inverse.
func (ctx *Context) Disable(token string) {
	ctx.disabled.Set(token, struct{}{})
}

// LookupVariable resolves name against the current frame only — Lumina has
// no lexical parent scopes.
func (ctx *Context) LookupVariable(name string) (value.Value, bool) {
	return ctx.CurrentFrame().Get(name)
}

// RNG returns the Context's random source, or nil to fall back to the
// package-level math/rand functions.
func (ctx *Context) RNG() *rand.Rand {
	return ctx.rng
}

// LookupFunction resolves a user-defined function by name, case-insensitively.
func (ctx *Context) LookupFunction(name string) (*Function, bool) {
	return ctx.functions.Get(name)
}

// DefineFunction stores fn in the process-wide registry, overwriting any
// existing entry with the same name.
func (ctx *Context) DefineFunction(fn *Function) {
	ctx.functions.Set(fn.Name, fn)
}

// DeleteFunction removes a same-named function entry, if any.
func (ctx *Context) DeleteFunction(name string) {
	ctx.functions.Delete(name)
}

// LastReturn returns the most recent call or expression-return result.
func (ctx *Context) LastReturn() value.Value {
	return ctx.lastReturn
}

// Reverse reports the top-level direction flag.
func (ctx *Context) Reverse() bool {
	return ctx.reverse
}

// CurrentLine returns the monotonic count of statements executed so far.
func (ctx *Context) CurrentLine() uint64 {
	return ctx.currentLine
}

// Output returns the writer PRINTLINE writes to; nil discards output.
func (ctx *Context) Output() io.Writer {
	return ctx.output
}

// FFIRegistry returns the registry IMPORT statements populate.
func (ctx *Context) FFIRegistry() *ffi.Registry {
	return ctx.ffiRegistry
}
