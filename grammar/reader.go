package grammar

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/earleygram/chartparse"
)

// leadingIndex matches an optional "N. " prefix on a rule line, where N is
// a positive integer, e.g. "12. NP -> D N".
var leadingIndex = regexp.MustCompile(`^\s*\d+\.\s+`)

// ReadFile loads a Grammar from r: one rule per line, '#'-prefixed lines
// are comments, an optional leading "N. " index is stripped, and a rule is
// "LHS -> RHS1 RHS2 …" with whitespace-separated symbols and single-quoted
// terminal literals (which may themselves contain whitespace, e.g.
// 'San Francisco'). An empty rhs denotes the epsilon rule. Lines without
// "->" are skipped silently, matching the teacher's tolerant file-reading
// policy (spec §7) — malformed *rules* built programmatically via NewRule
// still return a hard error.
func ReadFile(r io.Reader) (*Grammar, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = leadingIndex.ReplaceAllString(line, "")
		if !strings.Contains(line, "->") {
			tracer().Debugf("grammar: skipping line without '->': %q", line)
			continue
		}
		rule, err := parseRuleLine(line)
		if err != nil {
			tracer().Errorf("grammar: skipping malformed line %q: %v", line, err)
			continue
		}
		if err := g.Insert(rule); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseRuleLine(line string) (*Rule, error) {
	tokens, err := tokenizeRuleLine(line)
	if err != nil {
		return nil, err
	}
	arrowAt := -1
	for i, tok := range tokens {
		if tok.kind == tokArrow {
			arrowAt = i
			break
		}
	}
	if arrowAt == -1 || arrowAt != 1 {
		return nil, ErrMalformedRule
	}
	lhs := chartparse.Symbol(tokens[0].lexeme)
	rhsTokens := tokens[arrowAt+1:]
	rhs := make([]RHSSymbol, 0, len(rhsTokens))
	for _, tok := range rhsTokens {
		switch tok.kind {
		case tokQuoted:
			literal := strings.Trim(tok.lexeme, "'")
			rhs = append(rhs, T(literal))
		case tokSymbol:
			rhs = append(rhs, N(chartparse.Symbol(tok.lexeme)))
		default:
			return nil, ErrMalformedRule
		}
	}
	return NewRule(lhs, rhs...)
}
