// Package ident provides case-insensitive identifier comparison for Lumina.
//
// Every name Lumina resolves — variables, user functions, probability
// names, number words, disabled tokens — is matched case-insensitively.
// Centralizing that here keeps the fold rule consistent across packages
// and lets it fold Unicode identifiers correctly, not just ASCII.
package ident

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Normalize returns the case-folded form of name, suitable as a map key.
func Normalize(name string) string {
	return folder.String(name)
}

// Equal reports whether a and b are the same identifier, ignoring case.
func Equal(a, b string) bool {
	if len(a) == len(b) && a == b {
		return true
	}
	return Normalize(a) == Normalize(b)
}

// Compare orders a and b case-insensitively, preserving their original
// casing for display. It returns <0, 0, >0 like strings.Compare.
func Compare(a, b string) int {
	return strings.Compare(Normalize(a), Normalize(b))
}

// Contains reports whether name is present in list, case-insensitively.
func Contains(list []string, name string) bool {
	return Index(list, name) >= 0
}

// Index returns the position of name in list, case-insensitively, or -1.
func Index(list []string, name string) int {
	n := Normalize(name)
	for i, item := range list {
		if Normalize(item) == n {
			return i
		}
	}
	return -1
}

// IsKeyword reports whether name matches any of keywords, case-insensitively.
func IsKeyword(name string, keywords ...string) bool {
	return Contains(keywords, name)
}
