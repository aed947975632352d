package interp

import (
	"github.com/lumina-lang/lumina/internal/value"
	"github.com/lumina-lang/lumina/pkg/ident"
)

// Frame is a call-local variable store: a current binding per name plus an
// ordered history of the bindings it has replaced, consulted by PREVIOUS.
// Name comparison is case-insensitive throughout, via pkg/ident.
type Frame struct {
	vars    *ident.Map[value.Value]
	history *ident.Map[[]value.Value]
}

// NewFrame creates an empty call frame.
func NewFrame() *Frame {
	return &Frame{
		vars:    ident.NewMap[value.Value](),
		history: ident.NewMap[[]value.Value](),
	}
}

// Get looks up name's current binding.
func (f *Frame) Get(name string) (value.Value, bool) {
	return f.vars.Get(name)
}

// Has reports whether name is currently bound in this frame.
func (f *Frame) Has(name string) bool {
	return f.vars.Has(name)
}

// Assign binds name to val, first pushing any existing binding onto name's
// history so that PREVIOUS can later recover it.
func (f *Frame) Assign(name string, val value.Value) {
	if old, ok := f.vars.Get(name); ok {
		hist, _ := f.history.Get(name)
		f.history.Set(name, append(hist, old))
	}
	f.vars.Set(name, val)
}

// PopPrevious pops the most recent entry from name's history and binds name
// to it, reporting whether history was non-empty.
func (f *Frame) PopPrevious(name string) (value.Value, bool) {
	hist, ok := f.history.Get(name)
	if !ok || len(hist) == 0 {
		return value.Value{}, false
	}
	last := hist[len(hist)-1]
	hist = hist[:len(hist)-1]
	f.history.Set(name, hist)
	f.vars.Set(name, last)
	return last, true
}

// Delete removes name's current binding and its history.
func (f *Frame) Delete(name string) {
	f.vars.Delete(name)
	f.history.Delete(name)
}

// Names returns the currently bound variable names in this frame.
func (f *Frame) Names() []string {
	return f.vars.Keys()
}
