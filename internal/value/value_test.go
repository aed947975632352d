package value

import "testing"

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integral number", NewNumber(20), "20"},
		{"negative integral", NewNumber(-5), "-5"},
		{"fractional number", NewNumber(3.5), "3.5"},
		{"zero", NewNumber(0), "0"},
		{"huge integral float", NewNumber(1e20), "1e+20"},
		{"true", NewBoolean(true), "true"},
		{"false", NewBoolean(false), "false"},
		{"string", NewString("hello"), "hello"},
		{"empty string", NewString(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Stringify(); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"true bool", NewBoolean(true), true},
		{"false bool", NewBoolean(false), false},
		{"nonzero number", NewNumber(1), true},
		{"negative number", NewNumber(-1), true},
		{"zero number", NewNumber(0), false},
		{"nonempty string", NewString("x"), true},
		{"empty string", NewString(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareSameTag(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"numbers less", NewNumber(1), NewNumber(2), -1},
		{"numbers equal", NewNumber(5), NewNumber(5), 0},
		{"numbers greater", NewNumber(5), NewNumber(1), 1},
		{"strings less", NewString("a"), NewString("b"), -1},
		{"strings equal", NewString("x"), NewString("x"), 0},
		{"bools false<true", NewBoolean(false), NewBoolean(true), -1},
		{"bools equal", NewBoolean(true), NewBoolean(true), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Compare(tt.b)
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if (got < 0) != (tt.want < 0) || (got > 0) != (tt.want > 0) || (got == 0) != (tt.want == 0) {
				t.Errorf("Compare() = %d, want sign of %d", got, tt.want)
			}
		})
	}
}

func TestCompareCrossTagFails(t *testing.T) {
	_, err := NewNumber(1).Compare(NewString("1"))
	if err == nil {
		t.Fatal("expected a TypeError comparing Number to String, got nil")
	}
}
