package interp

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	lerr "github.com/lumina-lang/lumina/internal/errors"
	"github.com/lumina-lang/lumina/internal/lexer"
	"github.com/lumina-lang/lumina/internal/probability"
	"github.com/lumina-lang/lumina/internal/value"
	"github.com/lumina-lang/lumina/internal/words"
)

// EvalContext is the slice of Context the evaluator needs: disabled-token
// membership, current-frame variable lookup, and a source of randomness for
// probability-name draws. Context implements this.
type EvalContext interface {
	IsDisabled(token string) bool
	LookupVariable(name string) (value.Value, bool)
	RNG() *rand.Rand
}

// Evaluate tokenizes and evaluates an expression substring against ctx.
func Evaluate(expr string, ctx EvalContext) (value.Value, error) {
	tokens, err := lexer.Tokenize(expr)
	if err != nil {
		return value.Value{}, err
	}
	return EvaluateTokens(tokens, ctx)
}

// EvaluateTokens evaluates an already-tokenized expression: shunting-yard to
// RPN on the fixed precedence table, then a stack evaluation against ctx.
// A single non-operator token bypasses the shunting yard entirely and
// resolves directly, so that bare tokens containing no operator characters
// (emoji identifiers, for instance) are always accepted.
func EvaluateTokens(tokens []lexer.Token, ctx EvalContext) (value.Value, error) {
	if len(tokens) == 0 {
		return value.Value{}, lerr.NewBadExpression("empty expression")
	}
	if len(tokens) == 1 && tokens[0].Kind != lexer.Op {
		return resolveAtom(tokens[0].Text, ctx)
	}

	rpn, err := toRPN(tokens)
	if err != nil {
		return value.Value{}, err
	}

	var stack []value.Value
	for _, tok := range rpn {
		switch tok.Kind {
		case lexer.Atom, lexer.Str:
			v, err := resolveAtom(tok.Text, ctx)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack, v)
		case lexer.Op:
			if ctx.IsDisabled(tok.Text) {
				return value.Value{}, lerr.NewDisabledToken(tok.Text)
			}
			if len(stack) < 2 {
				return value.Value{}, lerr.NewBadExpression("operator " + tok.Text + " missing operands")
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			result, err := applyOp(tok.Text, a, b)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack, result)
		default:
			return value.Value{}, lerr.NewBadExpression("unexpected token " + tok.Text)
		}
	}
	if len(stack) != 1 {
		return value.Value{}, lerr.NewBadExpression("expression did not reduce to a single value: " + joinTokenText(tokens))
	}
	return stack[0], nil
}

func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/", "%":
		return 2
	default:
		return 0
	}
}

// toRPN converts infix tokens to reverse-Polish order via shunting-yard.
func toRPN(tokens []lexer.Token) ([]lexer.Token, error) {
	output := make([]lexer.Token, 0, len(tokens))
	var ops []lexer.Token

	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.Atom, lexer.Str:
			output = append(output, tok)
		case lexer.LParen:
			ops = append(ops, tok)
		case lexer.RParen:
			closed := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == lexer.LParen {
					closed = true
					break
				}
				output = append(output, top)
			}
			if !closed {
				return nil, lerr.NewMismatchedParens()
			}
		case lexer.Op:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind == lexer.Op && precedence(top.Text) >= precedence(tok.Text) {
					output = append(output, top)
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, tok)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == lexer.LParen {
			return nil, lerr.NewMismatchedParens()
		}
		output = append(output, top)
	}
	return output, nil
}

// resolveAtom resolves a non-operator RPN token to a Value, trying each
// rule in order and returning the first match: disabled check, variable,
// probability name, number word, quoted string, numeric literal, and
// finally a bare-word string fallback.
func resolveAtom(token string, ctx EvalContext) (value.Value, error) {
	if ctx.IsDisabled(token) {
		return value.Value{}, lerr.NewDisabledToken(token)
	}
	if v, ok := ctx.LookupVariable(token); ok {
		return v, nil
	}
	if p, ok := probability.Lookup(token); ok {
		return value.NewBoolean(probability.Draw(p, ctx.RNG())), nil
	}
	if n, ok := words.Lookup(token); ok {
		return value.NewNumber(n), nil
	}
	if s, ok := unquote(token); ok {
		return value.NewString(s), nil
	}
	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return value.NewNumber(n), nil
	}
	return value.NewString(token), nil
}

// unquote strips matching outer quote runs repeatedly, so that `"""x"""`
// yields `x`. The token must begin and end with the same quote rune and
// have length >= 2 to qualify.
func unquote(token string) (string, bool) {
	runes := []rune(token)
	if len(runes) < 2 {
		return "", false
	}
	quote := runes[0]
	if quote != '"' && quote != '\'' {
		return "", false
	}
	if runes[len(runes)-1] != quote {
		return "", false
	}
	for len(runes) >= 2 && runes[0] == quote && runes[len(runes)-1] == quote {
		runes = runes[1 : len(runes)-1]
	}
	return string(runes), true
}

func applyOp(op string, a, b value.Value) (value.Value, error) {
	switch op {
	case "+":
		if a.Kind() == value.Number && b.Kind() == value.Number {
			return value.NewNumber(a.AsNumber() + b.AsNumber()), nil
		}
		return value.NewString(a.Stringify() + b.Stringify()), nil
	case "-":
		x, y, err := requireNumbers(op, a, b)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewNumber(x - y), nil
	case "*":
		x, y, err := requireNumbers(op, a, b)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewNumber(x * y), nil
	case "%":
		x, y, err := requireNumbers(op, a, b)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewNumber(math.Mod(x, y)), nil
	case "/":
		x, y, err := requireNumbers(op, a, b)
		if err != nil {
			return value.Value{}, err
		}
		if y == 0 {
			return value.Value{}, lerr.NewDivByZero()
		}
		return value.NewNumber(x / y), nil
	default:
		return value.Value{}, lerr.NewBadExpression("unknown operator " + op)
	}
}

func requireNumbers(op string, a, b value.Value) (float64, float64, error) {
	if a.Kind() != value.Number || b.Kind() != value.Number {
		return 0, 0, lerr.NewTypeError("operator " + op + " requires numeric operands")
	}
	return a.AsNumber(), b.AsNumber(), nil
}

// SplitArgs splits a token stream into independent argument expressions,
// the way an inline call's trailing "arg…" is parsed: the shunting-yard
// evaluator knows an expression is complete once an atom or a closed paren
// group has been seen at depth 0 and the next token is not an operator —
// at that point a new argument begins rather than a malformed expression.
func SplitArgs(tokens []lexer.Token) [][]lexer.Token {
	var args [][]lexer.Token
	var current []lexer.Token
	depth := 0
	expectOperand := true

	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.LParen:
			if depth == 0 && !expectOperand {
				args = append(args, current)
				current = nil
				expectOperand = true
			}
			current = append(current, tok)
			depth++
		case lexer.RParen:
			current = append(current, tok)
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				expectOperand = false
			}
		case lexer.Op:
			current = append(current, tok)
			if depth == 0 {
				expectOperand = true
			}
		case lexer.Atom, lexer.Str:
			if depth == 0 && !expectOperand {
				args = append(args, current)
				current = nil
			}
			current = append(current, tok)
			if depth == 0 {
				expectOperand = false
			}
		}
	}
	if len(current) > 0 {
		args = append(args, current)
	}
	return args
}

// joinTokenText reassembles a token list's literal text with single spaces
// between tokens, used for error messages.
func joinTokenText(tokens []lexer.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
