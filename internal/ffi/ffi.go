// Package ffi defines the hook the Lumina executor consults when a call
// name is neither a built-in nor a user-defined function. The actual
// dynamic loading of native libraries is a platform detail left to the
// host embedding the interpreter (spec.md places it out of scope); this
// package only defines the resolution contract and the import registry
// that IMPORT statements populate.
package ffi

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lumina-lang/lumina/internal/value"
)

// Callable is a function resolved through the FFI hook.
type Callable interface {
	Call(args []value.Value) (value.Value, error)
}

// Resolver is consulted by ExternalCall dispatch once the built-in table
// and the user-function registry have both missed.
type Resolver interface {
	Resolve(name string) (Callable, bool)
}

// NoopResolver never resolves a name; it is the default Resolver for a
// Context that has loaded no native bindings.
type NoopResolver struct{}

// Resolve always reports no match.
func (NoopResolver) Resolve(string) (Callable, bool) { return nil, false }

// Handle records one IMPORT statement's effect: a loaded (or, absent an
// actual binding mechanism, merely registered) native library path. FFI
// handles are opened once at first import and retained for the process
// lifetime; there is no unload.
type Handle struct {
	Path string
}

// Registry tracks every Handle opened by IMPORT, in declaration order, and
// can dump itself as JSON for the CLI's --dump-tokens diagnostic.
type Registry struct {
	handles []Handle
}

// NewRegistry creates an empty import registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register opens (or, in this hookless build, just records) path and
// returns its Handle. Repeated imports of the same path each get their own
// handle entry, matching IMPORT's "registers an FFI handle" semantics.
func (r *Registry) Register(path string) Handle {
	h := Handle{Path: path}
	r.handles = append(r.handles, h)
	return h
}

// Handles returns every handle registered so far, in declaration order.
func (r *Registry) Handles() []Handle {
	return r.handles
}

// DumpJSON renders the registry as a JSON array of {"index","path"}
// objects, built incrementally with sjson and validated by reading each
// field back with gjson before returning.
func (r *Registry) DumpJSON() (string, error) {
	doc := "[]"
	var err error
	for i, h := range r.handles {
		prefix := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, prefix+".index", i)
		if err != nil {
			return "", fmt.Errorf("ffi: encode handle %d: %w", i, err)
		}
		doc, err = sjson.Set(doc, prefix+".path", h.Path)
		if err != nil {
			return "", fmt.Errorf("ffi: encode handle %d: %w", i, err)
		}
	}

	result := gjson.Parse(doc)
	if !result.IsArray() {
		return "", fmt.Errorf("ffi: encoded registry is not a JSON array")
	}
	return doc, nil
}
