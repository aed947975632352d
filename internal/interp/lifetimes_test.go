package interp

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lumina-lang/lumina/internal/value"
)

func TestBuildRetroactiveBindingsIgnoresPositiveAndSeconds(t *testing.T) {
	top := []Statement{
		{Kind: StmtLifetimeAssign, Name: "X", Lifetime: LifetimeSpec{Set: true, Lines: 2}, Expr: "5"},
		{Kind: StmtLifetimeAssign, Name: "T", Lifetime: LifetimeSpec{Set: true, IsSeconds: true, Seconds: 5}, Expr: "1"},
	}
	out := BuildRetroactiveBindings(top)
	if len(out) != 0 {
		t.Errorf("BuildRetroactiveBindings() = %v, want empty for non-negative-line lifetimes", out)
	}
}

func TestBuildRetroactiveBindingsNegativeLine(t *testing.T) {
	// "B -3: '''bye'''" as the 10th top-level statement (index 9, 0-indexed)
	// executes at line 10, so def_line = 10 and the synthetic window is
	// [7, 10), matching spec.md §8 scenario 7.
	top := make([]Statement, 10)
	top[9] = Statement{Kind: StmtLifetimeAssign, Name: "B", Lifetime: LifetimeSpec{Set: true, Lines: -3}, Expr: "'''bye'''"}
	out := BuildRetroactiveBindings(top)
	for _, line := range []uint64{7, 8, 9} {
		if len(out[line]) != 1 || out[line][0].Name != "B" {
			t.Errorf("out[%d] = %+v, want one synthetic binding for B", line, out[line])
		}
	}
	if len(out[10]) != 0 {
		t.Errorf("out[10] = %+v, the def_line itself should not get a synthetic binding", out[10])
	}
}

func TestBuildRetroactiveBindingsClampsAtLineOne(t *testing.T) {
	// Third statement: def_line 3, so -10 reaches back past line 1 and the
	// window [max(1, 3-10), 3) is clamped to lines 1 and 2.
	top := []Statement{
		{}, {},
		{Kind: StmtLifetimeAssign, Name: "B", Lifetime: LifetimeSpec{Set: true, Lines: -10}, Expr: "1"},
	}
	out := BuildRetroactiveBindings(top)
	if _, ok := out[0]; ok {
		t.Error("no synthetic binding should target line 0")
	}
	if len(out[1]) != 1 {
		t.Errorf("out[1] = %+v, want the clamped start at line 1", out[1])
	}
}

func TestApplyRetroactiveAssignsIntoCurrentFrame(t *testing.T) {
	ctx := NewContext(Options{RNG: rand.New(rand.NewSource(1))})
	ctx.retroactive = map[uint64][]SyntheticBinding{
		3: {{Name: "B", Expr: "'''bye'''"}},
	}
	if err := ctx.applyRetroactive(3); err != nil {
		t.Fatalf("applyRetroactive() error = %v", err)
	}
	got, ok := ctx.CurrentFrame().Get("B")
	if !ok || got.AsString() != "bye" {
		t.Errorf("CurrentFrame().Get(B) = %v, %v; want bye, true", got, ok)
	}
}

func TestSetLineExpirationClearsTimeExpiration(t *testing.T) {
	ctx := NewContext(Options{RNG: rand.New(rand.NewSource(1))})
	ctx.setTimeExpiration("x", time.Now().Add(time.Hour))
	ctx.setLineExpiration("x", 5)
	if len(ctx.timeExpirations) != 0 {
		t.Error("setLineExpiration should clear any prior time expiration")
	}
	if line, ok := ctx.lineExpirations.Get("x"); !ok || line != 5 {
		t.Errorf("lineExpirations[x] = %v, %v; want 5, true", line, ok)
	}
}

func TestExpireVariablesRemovesLineExpiredVariable(t *testing.T) {
	ctx := NewContext(Options{RNG: rand.New(rand.NewSource(1))})
	ctx.CurrentFrame().Assign("x", value.NewNumber(5))
	ctx.setLineExpiration("x", 2)
	ctx.currentLine = 2
	ctx.expireVariables()
	if ctx.CurrentFrame().Has("x") {
		t.Error("x should have expired once currentLine reached its scheduled line")
	}
}

func TestExpireVariablesRemovesTimeExpiredVariable(t *testing.T) {
	ctx := NewContext(Options{RNG: rand.New(rand.NewSource(1))})
	ctx.CurrentFrame().Assign("x", value.NewNumber(5))
	ctx.setTimeExpiration("x", time.Now().Add(-time.Second))
	ctx.expireVariables()
	if ctx.CurrentFrame().Has("x") {
		t.Error("x should have expired once its wall-clock deadline passed")
	}
}

func TestExpireVariablesLeavesUnexpiredAlone(t *testing.T) {
	ctx := NewContext(Options{RNG: rand.New(rand.NewSource(1))})
	ctx.CurrentFrame().Assign("x", value.NewNumber(5))
	ctx.setLineExpiration("x", 10)
	ctx.currentLine = 2
	ctx.expireVariables()
	if !ctx.CurrentFrame().Has("x") {
		t.Error("x should still be bound before its scheduled expiry line")
	}
}
