package lexer

import (
	"reflect"
	"testing"
)

func TestSplitHead(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`x: 10`, []string{"x:", "10"}},
		{`!PRINTLINE "hi there" x`, []string{"!PRINTLINE", `"hi there"`, "x"}},
		{`IF x == 1`, []string{"IF", "x", "==", "1"}},
		{``, nil},
		{`   `, nil},
	}
	for _, tt := range tests {
		got := SplitHead(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitHead(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestIsComment(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"# a comment", true},
		{"   # indented comment", true},
		{"", true},
		{"   ", true},
		{"x: 1", false},
		{"#not-trimmed-away-either", true},
	}
	for _, tt := range tests {
		if got := IsComment(tt.line); got != tt.want {
			t.Errorf("IsComment(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
