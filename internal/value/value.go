// Package value implements Lumina's runtime value model: a tagged union of
// Number, String, and Boolean.
package value

import (
	"fmt"
	"strconv"

	lerr "github.com/lumina-lang/lumina/internal/errors"
)

// Kind discriminates the tag of a Value.
type Kind int

const (
	// Number holds a 64-bit float.
	Number Kind = iota
	// String holds UTF-8 text.
	String
	// Boolean holds true/false.
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case String:
		return "String"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Value is an immutable, tagged runtime value.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// NewNumber builds a Number value.
func NewNumber(n float64) Value { return Value{kind: Number, num: n} }

// NewString builds a String value.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewBoolean builds a Boolean value.
func NewBoolean(b bool) Value { return Value{kind: Boolean, b: b} }

// Kind reports the value's tag.
func (v Value) Kind() Kind { return v.kind }

// AsNumber returns the underlying float64. Only valid when Kind() == Number.
func (v Value) AsNumber() float64 { return v.num }

// AsString returns the underlying string. Only valid when Kind() == String.
func (v Value) AsString() string { return v.str }

// AsBoolean returns the underlying bool. Only valid when Kind() == Boolean.
func (v Value) AsBoolean() bool { return v.b }

// Stringify renders the value the way Lumina prints and concatenates it.
// Numbers print as plain integers when integral and within ±1e18, and in
// general float formatting otherwise (so 1e20 prints as "1e+20"); booleans
// render lowercase; strings render verbatim.
func (v Value) Stringify() string {
	switch v.kind {
	case Number:
		if v.num == float64(int64(v.num)) && !isHugeFloat(v.num) {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case Boolean:
		if v.b {
			return "true"
		}
		return "false"
	case String:
		return v.str
	default:
		return ""
	}
}

// isHugeFloat reports values too large to round-trip through int64 without
// falling back to scientific notation, matching how large integral floats
// should still print in general float form rather than as truncated ints.
func isHugeFloat(f float64) bool {
	return f > 1e18 || f < -1e18
}

// Truthy implements the single-expression truthiness rule: Boolean is
// itself, Number is true when nonzero, String is true when non-empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case Boolean:
		return v.b
	case Number:
		return v.num != 0
	case String:
		return len(v.str) > 0
	default:
		return false
	}
}

// Compare performs a three-way comparison, only defined between
// same-tagged values. Cross-tag comparisons return a TypeError.
func (v Value) Compare(other Value) (int, error) {
	if v.kind != other.kind {
		return 0, lerr.NewTypeError(fmt.Sprintf("cannot compare %s with %s", v.kind, other.kind))
	}
	switch v.kind {
	case Number:
		switch {
		case v.num < other.num:
			return -1, nil
		case v.num > other.num:
			return 1, nil
		default:
			return 0, nil
		}
	case Boolean:
		switch {
		case v.b == other.b:
			return 0, nil
		case !v.b && other.b:
			return -1, nil
		default:
			return 1, nil
		}
	case String:
		switch {
		case v.str < other.str:
			return -1, nil
		case v.str > other.str:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, lerr.NewTypeError("unknown value kind")
	}
}
