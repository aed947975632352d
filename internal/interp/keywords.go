package interp

import "strings"

// comparisonOps are the 12 comparison spellings recognized in IF/WHILE
// condition positions, per spec §4.3.
var comparisonOps = []string{
	"<", ">", "<=", ">=", "==", "!=",
	"LESS", "GREATER", "LESSEQ", "GREATEREQ", "EQUAL", "NOTEQUAL",
}

// IsComparisonOp reports whether tok is one of the 12 comparison spellings,
// case-insensitively for the word forms.
func IsComparisonOp(tok string) bool {
	switch tok {
	case "<", ">", "<=", ">=", "==", "!=":
		return true
	}
	upper := strings.ToUpper(tok)
	for _, op := range comparisonOps[6:] {
		if upper == op {
			return true
		}
	}
	return false
}

// IsFunctionKeyword reports whether tok is a non-empty case-insensitive
// subsequence of "FUNCTION" (F, FN, FU, FUN, FUNC, FCTION, FUNCTION, ...).
// Each spelling is an independent token for purposes of DELETE.
func IsFunctionKeyword(tok string) bool {
	if tok == "" {
		return false
	}
	const target = "FUNCTION"
	upper := strings.ToUpper(tok)
	ti := 0
	for i := 0; i < len(target) && ti < len(upper); i++ {
		if target[i] == upper[ti] {
			ti++
		}
	}
	return ti == len(upper)
}

// compareWith applies a comparison operator (any of the 12 spellings) to
// cmp, the result of a three-way Compare, returning the boolean result.
func compareWith(op string, cmp int) bool {
	switch strings.ToUpper(op) {
	case "<", "LESS":
		return cmp < 0
	case ">", "GREATER":
		return cmp > 0
	case "<=", "LESSEQ":
		return cmp <= 0
	case ">=", "GREATEREQ":
		return cmp >= 0
	case "==", "EQUAL":
		return cmp == 0
	case "!=", "NOTEQUAL":
		return cmp != 0
	default:
		return false
	}
}
