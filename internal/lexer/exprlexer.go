// Package lexer implements Lumina's expression tokenizer: a context-free
// splitter of an expression substring into atoms, operator characters,
// parentheses, and multi-quote string literals. It never consults
// interpreter state — atom resolution happens later, in the evaluator.
package lexer

import (
	"strings"

	lerr "github.com/lumina-lang/lumina/internal/errors"
)

// TokenKind discriminates the kinds of tokens the expression tokenizer
// produces.
type TokenKind int

const (
	// Atom is a bare word: an identifier, keyword, number, or number word.
	Atom TokenKind = iota
	// Op is a single-character arithmetic operator.
	Op
	// LParen is "(".
	LParen
	// RParen is ")".
	RParen
	// Str is a quoted string literal, stored with its delimiting quote
	// runs still attached.
	Str
)

// Token is one lexical item produced by Tokenize.
type Token struct {
	Kind TokenKind
	Text string
}

const operatorChars = "+-*/%"

func isOperator(ch rune) bool {
	return strings.ContainsRune(operatorChars, ch)
}

func isQuote(ch rune) bool {
	return ch == '"' || ch == '\''
}

func isDelimiter(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' ||
		isOperator(ch) || ch == '(' || ch == ')' || isQuote(ch)
}

// Tokenize splits an expression substring into an ordered token list,
// following the rules of the Lumina expression tokenizer: skip whitespace;
// match maximal equal-length quote runs as string-literal delimiters;
// single-character operators and parens are their own tokens; everything
// else is consumed as the maximal run of non-delimiter characters.
func Tokenize(expr string) ([]Token, error) {
	runes := []rune(expr)
	var tokens []Token
	i := 0
	for i < len(runes) {
		ch := runes[i]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		if isQuote(ch) {
			tok, next, err := scanString(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
			continue
		}

		if ch == '(' {
			tokens = append(tokens, Token{Kind: LParen, Text: "("})
			i++
			continue
		}
		if ch == ')' {
			tokens = append(tokens, Token{Kind: RParen, Text: ")"})
			i++
			continue
		}
		if isOperator(ch) {
			tokens = append(tokens, Token{Kind: Op, Text: string(ch)})
			i++
			continue
		}

		start := i
		for i < len(runes) && !isDelimiter(runes[i]) {
			i++
		}
		tokens = append(tokens, Token{Kind: Atom, Text: string(runes[start:i])})
	}
	return tokens, nil
}

// scanString reads a quote-delimited string literal starting at i, which
// must index a quote rune. The opening delimiter is the maximal run of that
// same quote character; the token ends at the next identical run. Returns
// the token (quotes included, verbatim) and the index just past it.
func scanString(runes []rune, i int) (Token, int, error) {
	quote := runes[i]
	start := i
	openLen := 0
	for i < len(runes) && runes[i] == quote {
		openLen++
		i++
	}

	for i < len(runes) {
		if runes[i] != quote {
			i++
			continue
		}
		runLen := 0
		closeStart := i
		for i < len(runes) && runes[i] == quote {
			runLen++
			i++
		}
		if runLen >= openLen {
			end := closeStart + openLen
			return Token{Kind: Str, Text: string(runes[start:end])}, end, nil
		}
		// A shorter run of quote characters than the opener is just text
		// inside the string literal; keep scanning.
	}
	return Token{}, 0, lerr.NewUnterminatedString()
}
