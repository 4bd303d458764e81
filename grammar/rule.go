/*
Package grammar implements context-free grammar rules and the indexed,
reachability-closed rule set used to drive an Earley chart parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/earleygram/chartparse"
)

// tracer traces with key 'chartparse.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chartparse.grammar")
}

// Rule is an immutable context-free production: a left-hand-side category
// and an ordered sequence of right-hand-side symbols. Lexical is true iff
// the rhs begins with one or more single-quoted terminal literals; a
// terminal literal may not follow a non-terminal rhs entry (format
// invariant, checked by NewRule).
type Rule struct {
	LHS     chartparse.Symbol
	RHS     []RHSSymbol
	Lexical bool
}

// RHSSymbol is one entry on the right-hand side of a Rule: either a
// grammar symbol (nonterminal or part of speech) or a quoted terminal
// literal.
type RHSSymbol struct {
	Symbol  chartparse.Symbol
	Literal bool // true if this entry was written as a single-quoted literal
}

// N makes a non-literal RHS entry.
func N(sym chartparse.Symbol) RHSSymbol { return RHSSymbol{Symbol: sym} }

// T makes a quoted-literal RHS entry.
func T(lexeme string) RHSSymbol { return RHSSymbol{Symbol: chartparse.Symbol(lexeme), Literal: true} }

// ErrMalformedRule is returned (or wrapped) whenever a rule violates the
// format invariants: a literal following a non-terminal, or START occurring
// on a right-hand side.
var ErrMalformedRule = fmt.Errorf("malformed grammar rule")

// NewRule constructs a Rule from an lhs and an ordered rhs, deriving the
// Lexical flag by scanning the rhs for a leading run of literals. An empty
// rhs denotes the epsilon rule. NewRule returns ErrMalformedRule if a
// literal follows a non-literal entry, or if START appears in rhs.
func NewRule(lhs chartparse.Symbol, rhs ...RHSSymbol) (*Rule, error) {
	r := &Rule{LHS: lhs, RHS: rhs}
	seenNonLiteral := false
	for i, sym := range rhs {
		if sym.Symbol == chartparse.START {
			return nil, fmt.Errorf("%w: START occurs on rhs of %s", ErrMalformedRule, lhs)
		}
		if sym.Literal {
			if seenNonLiteral {
				return nil, fmt.Errorf("%w: literal %q follows non-terminal at position %d in %s",
					ErrMalformedRule, sym.Symbol, i, lhs)
			}
		} else {
			seenNonLiteral = true
		}
	}
	r.Lexical = len(rhs) > 0 && rhs[0].Literal
	return r, nil
}

// Equal reports structural equality of lhs and rhs (not identity).
func (r *Rule) Equal(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.LHS != other.LHS || len(r.RHS) != len(other.RHS) {
		return false
	}
	for i, sym := range r.RHS {
		if sym != other.RHS[i] {
			return false
		}
	}
	return true
}

// IsEpsilon reports whether this rule has an empty right-hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

// String formats a rule for debugging, e.g. `NP -> D N` or `PN -> 'John'`.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(string(r.LHS))
	b.WriteString(" ->")
	if len(r.RHS) == 0 {
		b.WriteString(" ")
		b.WriteString(string(chartparse.Epsilon))
		return b.String()
	}
	for _, sym := range r.RHS {
		b.WriteString(" ")
		if sym.Literal {
			b.WriteString("'")
			b.WriteString(string(sym.Symbol))
			b.WriteString("'")
		} else {
			b.WriteString(string(sym.Symbol))
		}
	}
	return b.String()
}

// LexicalPrefix returns the leading run of literal tokens at the start of
// the rhs (possibly empty if the rule is not lexical).
func (r *Rule) LexicalPrefix() []string {
	if !r.Lexical {
		return nil
	}
	prefix := make([]string, 0, len(r.RHS))
	for _, sym := range r.RHS {
		if !sym.Literal {
			break
		}
		prefix = append(prefix, string(sym.Symbol))
	}
	return prefix
}
