package grammar

import (
	"fmt"

	"github.com/earleygram/chartparse"
)

// Normalize runs the two pre-steps required before a Grammar may be used to
// construct a Parser: variable renaming and part-of-speech rule
// assignment. isPOS reports whether a symbol is a member of the
// process-wide part-of-speech set (vocab.PartsOfSpeech); those symbols are
// preserved verbatim by renaming and are given a single dedicated
// POS-introduction rule each.
//
// Normalize returns a new Grammar; the input is left untouched.
func Normalize(g *Grammar, isPOS func(chartparse.Symbol) bool) (*Grammar, error) {
	renamed, err := renameVariables(g, isPOS)
	if err != nil {
		return nil, err
	}
	return assignPOSRules(renamed, isPOS), nil
}

// renameVariables renames every non-START nonterminal occurring on an lhs
// or rhs to X1, X2, … in first-seen order, except symbols for which isPOS
// reports true, which are preserved. Exactly one START rule must be
// present; START must not occur on any rhs (already enforced by Rule, but
// re-checked here since renaming operates over the schematic set).
func renameVariables(g *Grammar, isPOS func(chartparse.Symbol) bool) (*Grammar, error) {
	rules := g.SchematicRules()
	startCount := 0
	for _, r := range rules {
		if r.LHS == chartparse.START {
			startCount++
		}
	}
	if startCount != 1 {
		return nil, fmt.Errorf("%w: grammar has %d START rules, want exactly 1", ErrMalformedRule, startCount)
	}

	names := make(map[chartparse.Symbol]chartparse.Symbol)
	next := 1
	rename := func(sym chartparse.Symbol) chartparse.Symbol {
		if sym == chartparse.START || isPOS(sym) {
			return sym
		}
		if n, ok := names[sym]; ok {
			return n
		}
		n := chartparse.Symbol(fmt.Sprintf("X%d", next))
		next++
		names[sym] = n
		return n
	}

	// First pass establishes names by walking lhs-then-rhs in insertion
	// order, so renamed symbols are stable and readable for a given
	// grammar file.
	isNonterminal := func(sym chartparse.Symbol) bool {
		return g.HasNonterminal(sym) || hasLHS(rules, sym)
	}
	for _, r := range rules {
		rename(r.LHS)
		for _, rhs := range r.RHS {
			if !rhs.Literal && isNonterminal(rhs.Symbol) {
				rename(rhs.Symbol)
			}
		}
	}

	out := New()
	for _, r := range rules {
		newRHS := make([]RHSSymbol, len(r.RHS))
		for i, rhs := range r.RHS {
			if rhs.Literal || !isNonterminal(rhs.Symbol) {
				newRHS[i] = rhs
				continue
			}
			newRHS[i] = N(rename(rhs.Symbol))
		}
		nr, err := NewRule(rename(r.LHS), newRHS...)
		if err != nil {
			return nil, err
		}
		if err := out.Insert(nr); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func hasLHS(rules []*Rule, sym chartparse.Symbol) bool {
	for _, r := range rules {
		if r.LHS == sym {
			return true
		}
	}
	return false
}

// assignPOSRules synthesizes, for every distinct part-of-speech symbol
// appearing on some rhs, a fresh nonterminal Xk and a rule Xk -> POS, then
// rewrites occurrences of POS to use Xk. This guarantees each part of
// speech is introduced by exactly one dedicated rule, so the parser's
// pre-scan step can always find a single "POS -> 'token'" concretization to
// attach scanned terminals to.
func assignPOSRules(g *Grammar, isPOS func(chartparse.Symbol) bool) *Grammar {
	rules := g.SchematicRules()
	posIntro := make(map[chartparse.Symbol]chartparse.Symbol) // POS -> Xk
	next := 1
	highestX := 0
	for _, r := range rules {
		var n int
		if _, err := fmt.Sscanf(string(r.LHS), "X%d", &n); err == nil && n > highestX {
			highestX = n
		}
	}
	next = highestX + 1

	introFor := func(pos chartparse.Symbol) chartparse.Symbol {
		if x, ok := posIntro[pos]; ok {
			return x
		}
		x := chartparse.Symbol(fmt.Sprintf("X%d", next))
		next++
		posIntro[pos] = x
		return x
	}

	out := New()
	for _, r := range rules {
		newRHS := make([]RHSSymbol, len(r.RHS))
		changed := false
		for i, rhs := range r.RHS {
			if !rhs.Literal && isPOS(rhs.Symbol) {
				newRHS[i] = N(introFor(rhs.Symbol))
				changed = true
			} else {
				newRHS[i] = rhs
			}
		}
		if changed {
			nr, _ := NewRule(r.LHS, newRHS...)
			out.Insert(nr)
		} else {
			out.Insert(r)
		}
	}
	for pos, x := range posIntro {
		nr, _ := NewRule(x, N(pos))
		out.Insert(nr)
	}
	return out
}
