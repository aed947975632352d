package ident_test

import (
	"fmt"
	"sort"

	"github.com/lumina-lang/lumina/pkg/ident"
)

// ExampleNormalize shows using Normalize to build a case-folded map key,
// the way a variable frame stores bindings under any casing.
func ExampleNormalize() {
	frame := make(map[string]float64)

	frame[ident.Normalize("Score")] = 42
	frame[ident.Normalize("lives")] = 3

	fmt.Println(frame[ident.Normalize("SCORE")])
	fmt.Println(frame[ident.Normalize("Lives")])
	// Output:
	// 42
	// 3
}

// ExampleEqual checks a token against a fixed keyword without normalizing
// both sides first.
func ExampleEqual() {
	token := "ReturN"

	if ident.Equal(token, "return") {
		fmt.Println("matched RETURN")
	}
	if ident.Equal("reverse", "REVERSE") {
		fmt.Println("matched REVERSE")
	}

	// Output:
	// matched RETURN
	// matched REVERSE
}

// ExampleCompare sorts a set of probability names case-insensitively while
// keeping each one's original casing.
func ExampleCompare() {
	names := []string{"maybe", "TRUE", "Likely", "false"}

	sort.Slice(names, func(i, j int) bool {
		return ident.Compare(names[i], names[j]) < 0
	})

	for _, n := range names {
		fmt.Println(n)
	}
	// Output:
	// false
	// Likely
	// maybe
	// TRUE
}

// ExampleContains checks whether a token is one of the FN-keyword spellings.
func ExampleContains() {
	fnSpellings := []string{"fn", "func", "function"}

	fmt.Println(ident.Contains(fnSpellings, "FUNCTION"))
	fmt.Println(ident.Contains(fnSpellings, "Fn"))
	fmt.Println(ident.Contains(fnSpellings, "procedure"))

	// Output:
	// true
	// true
	// false
}

// ExampleIndex finds where a statement keyword sits in a fixed ordering.
func ExampleIndex() {
	order := []string{"if", "while", "fn", "end"}

	fmt.Println(ident.Index(order, "WHILE"))
	fmt.Println(ident.Index(order, "End"))
	fmt.Println(ident.Index(order, "delete"))

	// Output:
	// 1
	// 3
	// -1
}

// ExampleIsKeyword tests a name against the tokens that disable a DELETE.
func ExampleIsKeyword() {
	name := "DELETE"

	if ident.IsKeyword(name, "delete", "reverse", "return") {
		fmt.Println("reserved word")
	}
	if !ident.IsKeyword("total", "delete", "reverse", "return") {
		fmt.Println("ordinary identifier")
	}

	// Output:
	// reserved word
	// ordinary identifier
}

// Example_variableFrame sketches the shape of a case-insensitive variable
// frame built on ident.Map: lookups by any casing resolve to the binding
// recorded under the spelling it was stored with.
func Example_variableFrame() {
	frame := ident.NewMap[float64]()

	assign := func(name string, val float64) {
		frame.Set(name, val)
	}

	assign("Health", 100)
	assign("MANA", 50)

	for _, lookup := range []string{"health", "mana"} {
		val, _ := frame.Get(lookup)
		orig := frame.GetOriginalKey(lookup)
		fmt.Printf("%s = %g\n", orig, val)
	}

	// Output:
	// Health = 100
	// MANA = 50
}
