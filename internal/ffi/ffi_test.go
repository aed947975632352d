package ffi

import (
	"strings"
	"testing"

	"github.com/lumina-lang/lumina/internal/value"
)

func TestNoopResolverNeverResolves(t *testing.T) {
	var r Resolver = NoopResolver{}
	if _, ok := r.Resolve("anything"); ok {
		t.Error("NoopResolver should never resolve a name")
	}
}

func TestRegistryRegisterAndHandles(t *testing.T) {
	reg := NewRegistry()
	reg.Register("math/trig")
	reg.Register("net/http")
	handles := reg.Handles()
	if len(handles) != 2 || handles[0].Path != "math/trig" || handles[1].Path != "net/http" {
		t.Errorf("Handles() = %+v", handles)
	}
}

func TestRegistryAllowsRepeatedImports(t *testing.T) {
	reg := NewRegistry()
	reg.Register("same/path")
	reg.Register("same/path")
	if len(reg.Handles()) != 2 {
		t.Errorf("Handles() = %d entries, want 2 (each IMPORT gets its own handle)", len(reg.Handles()))
	}
}

func TestDumpJSONEmptyRegistry(t *testing.T) {
	reg := NewRegistry()
	doc, err := reg.DumpJSON()
	if err != nil {
		t.Fatalf("DumpJSON() error = %v", err)
	}
	if strings.TrimSpace(doc) != "[]" {
		t.Errorf("DumpJSON() = %q, want []", doc)
	}
}

func TestDumpJSONRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.Register("math/trig")
	doc, err := reg.DumpJSON()
	if err != nil {
		t.Fatalf("DumpJSON() error = %v", err)
	}
	if !strings.Contains(doc, "math/trig") {
		t.Errorf("DumpJSON() = %q, want it to contain the registered path", doc)
	}
}

type fakeCallable struct{ result value.Value }

func (f fakeCallable) Call(args []value.Value) (value.Value, error) { return f.result, nil }

type fakeResolver struct{ names map[string]Callable }

func (f fakeResolver) Resolve(name string) (Callable, bool) {
	c, ok := f.names[name]
	return c, ok
}

func TestResolverResolvesRegisteredName(t *testing.T) {
	want := value.NewNumber(42)
	r := fakeResolver{names: map[string]Callable{"double": fakeCallable{result: want}}}
	c, ok := r.Resolve("double")
	if !ok {
		t.Fatal("expected double to resolve")
	}
	got, err := c.Call(nil)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if got.AsNumber() != 42 {
		t.Errorf("Call() = %v, want 42", got.AsNumber())
	}
}
