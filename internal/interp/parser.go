package interp

import (
	"strconv"
	"strings"

	lerr "github.com/lumina-lang/lumina/internal/errors"
	"github.com/lumina-lang/lumina/internal/lexer"
)

// lineParser walks a source file line by line, handing out the next
// non-comment, non-blank line to the recursive-descent statement parser.
// Block statements (IF, WHILE, function definitions) recurse back into the
// same cursor to consume their nested body up to a matching END.
type lineParser struct {
	lines []string
	idx   int
}

func newLineParser(source string) *lineParser {
	return &lineParser{lines: strings.Split(source, "\n")}
}

// next returns the next non-comment, non-blank line and its 1-indexed
// source line number, or ok=false at end of input.
func (p *lineParser) next() (line string, lineNo int, ok bool) {
	for p.idx < len(p.lines) {
		raw := p.lines[p.idx]
		p.idx++
		if lexer.IsComment(raw) {
			continue
		}
		return raw, p.idx, true
	}
	return "", 0, false
}

// Parse builds the top-level statement list for a Lumina source file.
func Parse(source string) ([]Statement, error) {
	lp := newLineParser(source)
	var stmts []Statement
	for {
		line, lineNo, ok := lp.next()
		if !ok {
			break
		}
		stmt, err := parseStatement(lp, line, lineNo)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseBlockBody consumes statements until a line whose head token is END,
// returning MissingEnd if the input runs out first.
func parseBlockBody(lp *lineParser) ([]Statement, error) {
	var body []Statement
	for {
		line, lineNo, ok := lp.next()
		if !ok {
			return nil, lerr.NewMissingEnd()
		}
		head := lexer.SplitHead(line)
		if len(head) > 0 && strings.EqualFold(head[0], "END") {
			return body, nil
		}
		stmt, err := parseStatement(lp, line, lineNo)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

func parseStatement(lp *lineParser, line string, lineNo int) (Statement, error) {
	head := lexer.SplitHead(line)
	if len(head) == 0 {
		return Statement{}, lerr.NewBadStatement("").AtLine(lineNo)
	}
	first := head[0]

	switch {
	case strings.EqualFold(first, "IMPORT"):
		if len(head) < 2 {
			return Statement{}, lerr.NewBadStatement("IMPORT").AtLine(lineNo)
		}
		path, _ := unquote(head[1])
		return Statement{Kind: StmtImport, ImportPath: path, Line: lineNo}, nil

	case strings.EqualFold(first, "DELETE"):
		if len(head) < 2 {
			return Statement{}, lerr.NewBadStatement("DELETE").AtLine(lineNo)
		}
		return Statement{Kind: StmtDelete, Token: head[1], Line: lineNo}, nil

	case strings.EqualFold(first, "PREVIOUS"):
		if len(head) < 2 {
			return Statement{}, lerr.NewBadStatement("PREVIOUS").AtLine(lineNo)
		}
		return Statement{Kind: StmtPrevious, Name: head[1], Line: lineNo}, nil

	case strings.EqualFold(first, "RETURN"):
		return Statement{Kind: StmtReturn, Expr: strings.Join(head[1:], " "), Line: lineNo}, nil

	case strings.EqualFold(first, "REVERSE"):
		return Statement{Kind: StmtReverse, Line: lineNo}, nil

	case strings.EqualFold(first, "IF"):
		cond, err := parseCondition(head[1:])
		if err != nil {
			return Statement{}, err
		}
		body, err := parseBlockBody(lp)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtIf, Cond: cond, Body: body, Line: lineNo}, nil

	case strings.EqualFold(first, "WHILE"):
		cond, err := parseCondition(head[1:])
		if err != nil {
			return Statement{}, err
		}
		body, err := parseBlockBody(lp)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtWhile, Cond: cond, Body: body, Line: lineNo}, nil

	case IsFunctionKeyword(first) && !(len(head) >= 2 && strings.HasSuffix(head[1], ":")):
		if len(head) < 2 {
			return Statement{}, lerr.NewBadStatement(first).AtLine(lineNo)
		}
		body, err := parseBlockBody(lp)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtFuncDef, FuncKeyword: first, FuncName: head[1], Body: body, Line: lineNo}, nil

	case strings.HasPrefix(first, "!") && len(first) > 1:
		return Statement{
			Kind:     StmtInlineCall,
			CallName: first[1:],
			Expr:     strings.Join(head[1:], " "),
			Line:     lineNo,
		}, nil

	case strings.HasSuffix(first, ":"):
		name := strings.TrimSuffix(first, ":")
		return Statement{Kind: StmtAssign, Name: name, Expr: strings.Join(head[1:], " "), Line: lineNo}, nil

	case len(head) >= 2 && strings.HasSuffix(head[1], ":"):
		lifetimeRaw := strings.TrimSuffix(head[1], ":")
		lifetime, err := parseLifetime(lifetimeRaw)
		if err != nil {
			return Statement{}, err
		}
		return Statement{
			Kind:     StmtLifetimeAssign,
			Name:     first,
			Lifetime: lifetime,
			Expr:     strings.Join(head[2:], " "),
			Line:     lineNo,
		}, nil

	default:
		return Statement{}, lerr.NewBadStatement(first).AtLine(lineNo)
	}
}

// parseCondition parses an IF/WHILE guard from the whitespace-delimited
// tokens following the keyword: a binary comparison if one of the 12
// recognized spellings appears among them, otherwise a single truthiness
// expression.
func parseCondition(rest []string) (Condition, error) {
	if len(rest) == 0 {
		return Condition{}, lerr.NewBadExpression("missing condition")
	}
	for i, tok := range rest {
		if IsComparisonOp(tok) {
			return Condition{
				Binary: true,
				Left:   strings.Join(rest[:i], " "),
				CmpOp:  tok,
				Right:  strings.Join(rest[i+1:], " "),
			}, nil
		}
	}
	return Condition{Expr: strings.Join(rest, " ")}, nil
}

// parseLifetime parses the life-span token of a lifetime assignment: a
// signed integer line count, or an "<n>s" wall-clock second count.
func parseLifetime(raw string) (LifetimeSpec, error) {
	if raw == "" {
		return LifetimeSpec{}, lerr.NewBadLifetime(raw)
	}
	if last := raw[len(raw)-1]; last == 's' || last == 'S' {
		seconds, err := strconv.ParseFloat(raw[:len(raw)-1], 64)
		if err != nil {
			return LifetimeSpec{}, lerr.NewBadLifetime(raw)
		}
		return LifetimeSpec{Set: true, IsSeconds: true, Seconds: seconds}, nil
	}
	lines, err := strconv.Atoi(raw)
	if err != nil {
		return LifetimeSpec{}, lerr.NewBadLifetime(raw)
	}
	return LifetimeSpec{Set: true, Lines: lines}, nil
}
