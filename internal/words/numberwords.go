// Package words resolves Lumina's number-word literals: zero through ten,
// case-insensitive.
package words

import "github.com/lumina-lang/lumina/pkg/ident"

var numberWords = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten",
}

// Lookup resolves a number word to its numeric value, case-insensitively.
func Lookup(token string) (float64, bool) {
	idx := ident.Index(numberWords, token)
	if idx < 0 {
		return 0, false
	}
	return float64(idx), true
}
