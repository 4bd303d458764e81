package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/exp/slices"

	"github.com/earleygram/chartparse"
)

// Grammar is a mapping lhs -> list of Rule, restricted to rules reachable
// from START, plus a schematic set preserving every rule as inserted
// regardless of reachability.
//
// Invariant: for every rhs symbol of any reachable rule, either it is a
// part of speech (see vocab.PartsOfSpeech), or it appears as a key in the
// reachable map, or it is a quoted literal. START never appears on any rhs
// (enforced by Rule.NewRule) and at most one Rule with lhs==START may be
// inserted.
type Grammar struct {
	reachable map[chartparse.Symbol]*arraylist.List // lhs -> []*Rule, reachable from START
	schematic []*Rule                               // every rule ever inserted, in insertion order
	hasStart  bool
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{reachable: make(map[chartparse.Symbol]*arraylist.List)}
}

// ErrDuplicateStart is returned by Insert when a second START rule is added.
var ErrDuplicateStart = fmt.Errorf("duplicate START rule")

// Insert adds rule to the schematic set, and — if rule is reachable from
// START — also to the reachable map. Reachability is recomputed by a BFS
// over the schematic set each time a rule is inserted, since an earlier
// rule may only become reachable once a later rule links it to the rest of
// the grammar (e.g. rules inserted in file order, last-to-first).
func (g *Grammar) Insert(rule *Rule) error {
	if rule.LHS == chartparse.START {
		if g.hasStart {
			return ErrDuplicateStart
		}
		g.hasStart = true
	}
	g.schematic = append(g.schematic, rule)
	g.recomputeReachable()
	return nil
}

// recomputeReachable performs a BFS over the tuple (rule, lhs-nonterminal)
// starting at START, walking every schematic rule whose lhs has already
// been shown reachable and following its rhs nonterminal symbols.
func (g *Grammar) recomputeReachable() {
	reachableLHS := map[chartparse.Symbol]bool{chartparse.START: true}
	queue := []chartparse.Symbol{chartparse.START}
	for len(queue) > 0 {
		sym := queue[0]
		queue = queue[1:]
		for _, rule := range g.schematic {
			if rule.LHS != sym {
				continue
			}
			for _, rhs := range rule.RHS {
				if rhs.Literal {
					continue
				}
				if !reachableLHS[rhs.Symbol] {
					reachableLHS[rhs.Symbol] = true
					queue = append(queue, rhs.Symbol)
				}
			}
		}
	}
	g.reachable = make(map[chartparse.Symbol]*arraylist.List)
	for _, rule := range g.schematic {
		if !reachableLHS[rule.LHS] {
			continue
		}
		list, ok := g.reachable[rule.LHS]
		if !ok {
			list = arraylist.New()
			g.reachable[rule.LHS] = list
		}
		if !listContainsRule(list, rule) {
			list.Add(rule)
		}
	}
	tracer().Debugf("grammar: %d schematic rules, %d reachable lhs", len(g.schematic), len(g.reachable))
}

func listContainsRule(list *arraylist.List, rule *Rule) bool {
	found := false
	list.Each(func(_ int, v interface{}) {
		if v.(*Rule) == rule {
			found = true
		}
	})
	return found
}

// RulesFor returns the reachable rules with the given lhs, or nil if lhs is
// not a key in the reachable map.
func (g *Grammar) RulesFor(lhs chartparse.Symbol) []*Rule {
	list, ok := g.reachable[lhs]
	if !ok {
		return nil
	}
	values := list.Values()
	rules := make([]*Rule, len(values))
	for i, v := range values {
		rules[i] = v.(*Rule)
	}
	return rules
}

// HasNonterminal reports whether lhs is a key in the reachable map, i.e.
// some reachable rule expands it.
func (g *Grammar) HasNonterminal(lhs chartparse.Symbol) bool {
	_, ok := g.reachable[lhs]
	return ok
}

// StartRule returns the unique reachable rule with lhs START, or nil.
func (g *Grammar) StartRule() *Rule {
	for _, r := range g.RulesFor(chartparse.START) {
		return r
	}
	return nil
}

// Dfs marks all nonterminals reachable from start (including start itself)
// into visited, useful for grammar validation independent of Insert's
// START-rooted closure.
func (g *Grammar) Dfs(start chartparse.Symbol, visited map[chartparse.Symbol]bool) {
	if visited[start] {
		return
	}
	visited[start] = true
	for _, rule := range g.schematic {
		if rule.LHS != start {
			continue
		}
		for _, rhs := range rule.RHS {
			if !rhs.Literal {
				g.Dfs(rhs.Symbol, visited)
			}
		}
	}
}

// Nonterminals returns every reachable lhs symbol, sorted for deterministic
// iteration.
func (g *Grammar) Nonterminals() []chartparse.Symbol {
	syms := make([]chartparse.Symbol, 0, len(g.reachable))
	for sym := range g.reachable {
		syms = append(syms, sym)
	}
	slices.SortFunc(syms, func(a, b chartparse.Symbol) bool { return a < b })
	return syms
}

// SchematicRules returns every rule ever inserted, reachable or not, in
// insertion order.
func (g *Grammar) SchematicRules() []*Rule {
	out := make([]*Rule, len(g.schematic))
	copy(out, g.schematic)
	return out
}
