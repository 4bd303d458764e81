package chart

import (
	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/grammar"
)

// Forest traversal: counting and enumerating derivations over the shared,
// packed graph of Items and Spans. Cycles (unit-production loops) are
// broken by a three-colour DFS: a Span or Item under active recursion is
// coloured grey; revisiting a grey node contributes zero to that
// derivation, cutting the cycle without deleting the edge that caused it.
// Once a node's count is known it is coloured black and cached, so
// repeated reductors sharing a sub-span are only counted once.

type color int

const (
	white color = iota // not yet visited
	grey               // currently being computed (on the DFS stack)
	black              // finished, count cached
)

// Visited threads colouring and cached results through a single traversal
// call. A fresh Visited must be used per top-level Count/Enumerate call;
// reusing one across calls would incorrectly treat an earlier black node as
// already finished forever, which is exactly what we want *within* one
// call but wrong across independent queries on a mutated chart.
type Visited struct {
	spanColor map[*Span]color
	spanCount map[*Span]int
	spanStrs  map[*Span][]string

	itemColor map[*Item]color
	itemCount map[*Item]int
	itemStrs  map[*Item][]string
}

// NewVisited returns an empty traversal state.
func NewVisited() *Visited {
	return &Visited{
		spanColor: make(map[*Span]color),
		spanCount: make(map[*Span]int),
		spanStrs:  make(map[*Span][]string),
		itemColor: make(map[*Item]color),
		itemCount: make(map[*Item]int),
		itemStrs:  make(map[*Item][]string),
	}
}

// Count returns the number of finite derivations represented by s. Grey
// (in-progress) encounters — i.e. a cycle back to a span currently being
// expanded — contribute zero.
func (s *Span) Count(v *Visited) int {
	switch v.spanColor[s] {
	case grey:
		return 0
	case black:
		return v.spanCount[s]
	}
	v.spanColor[s] = grey
	sum := 0
	for _, r := range s.Reductors.Values() {
		sum += r.(*Item).Count(v)
	}
	v.spanColor[s] = black
	v.spanCount[s] = sum
	return sum
}

// Count returns the number of finite derivations represented by it: the
// product of its reductor span's count (or 1 for a leaf/pre-scanned item
// with no span) and its predecessor's count (if the item has a
// predecessor chain, i.e. dot_index > 1), or just the reductor count if
// there is no predecessor contribution.
func (it *Item) Count(v *Visited) int {
	switch v.itemColor[it] {
	case grey:
		return 0
	case black:
		return v.itemCount[it]
	}
	v.itemColor[it] = grey
	r := 1
	if it.ReductorSpan != nil {
		r = it.ReductorSpan.Count(v)
	}
	p := 0
	if it.DotIndex > 1 && it.Predecessor != nil {
		p = it.Predecessor.Count(v)
	}
	result := r
	if p > 0 {
		result = p * r
	}
	v.itemColor[it] = black
	v.itemCount[it] = result
	return result
}

// EnumFlag selects between fully-bracketed tree output and bare
// part-of-speech yields.
type EnumFlag int

const (
	Bracketed EnumFlag = iota
	POSYield
)

// Enumerate produces the set of strings formed by wrapping each reductor's
// enumeration in "(lhs inner)" (Bracketed) or concatenating inner strings
// with spaces (POSYield). A grey-marked span (cycle) contributes no
// strings, matching Count's treatment of cycles.
func (s *Span) Enumerate(v *Visited, flag EnumFlag) []string {
	switch v.spanColor[s] {
	case grey:
		return nil
	case black:
		return v.spanStrs[s]
	}
	v.spanColor[s] = grey
	var out []string
	for _, r := range s.Reductors.Values() {
		item := r.(*Item)
		for _, inner := range item.Enumerate(v, flag) {
			if flag == POSYield {
				out = append(out, inner)
			} else {
				out = append(out, "("+string(s.LHS)+" "+inner+")")
			}
		}
	}
	v.spanColor[s] = black
	v.spanStrs[s] = out
	return out
}

// Enumerate computes the cross-product of the predecessor's enumeration
// (if any) and the reductor span's enumeration (or, absent a span, the
// surface text matched by the lexicalized rhs prefix in Bracketed mode, or
// the item's own rule's lhs — its part-of-speech category — in POSYield
// mode).
func (it *Item) Enumerate(v *Visited, flag EnumFlag) []string {
	switch v.itemColor[it] {
	case grey:
		return nil
	case black:
		return v.itemStrs[it]
	}
	v.itemColor[it] = grey

	var reductorStrs []string
	if it.ReductorSpan != nil {
		reductorStrs = it.ReductorSpan.Enumerate(v, flag)
	} else if flag == Bracketed {
		reductorStrs = []string{leafYield(it)}
	} else {
		reductorStrs = []string{string(it.Rule.LHS)}
	}

	var out []string
	if it.DotIndex > 1 && it.Predecessor != nil {
		predStrs := it.Predecessor.Enumerate(v, flag)
		for _, p := range predStrs {
			for _, r := range reductorStrs {
				out = append(out, joinYield(p, r, flag))
			}
		}
	} else {
		out = append(out, reductorStrs...)
	}
	v.itemColor[it] = black
	v.itemStrs[it] = out
	return out
}

func joinYield(a, b string, flag EnumFlag) string {
	if flag == POSYield {
		if a == "" {
			return b
		}
		if b == "" {
			return a
		}
		return a + " " + b
	}
	return a + b
}

// leafYield renders a lexicalized leaf item (no ReductorSpan) for Bracketed
// output. A process-wide scanned rule (vocab.ScannedRules, whose rhs
// literal is always the Wildcard placeholder rather than real text) renders
// the actual surface token the pre-scan step matched, taken from the
// column the item ends at; any other lexical rule renders its own literal
// rhs prefix, which already carries real text.
func leafYield(it *Item) string {
	if isScannedRule(it.Rule) {
		return it.EndCol.Token
	}
	return literalYield(it)
}

// isScannedRule reports whether r is the canonical "POS -> Wildcard" rule
// vocab.Load synthesizes per part-of-speech category, as opposed to a rule
// written out in a grammar file with a real literal.
func isScannedRule(r *grammar.Rule) bool {
	return len(r.RHS) == 1 && r.RHS[0].Literal && r.RHS[0].Symbol == chartparse.Wildcard
}

// literalYield renders the matched literal rhs symbols of a lexicalized
// item for bracketed output, e.g. the dot having advanced across 'the'.
func literalYield(it *Item) string {
	var out string
	prefix := it.Rule.LexicalPrefix()
	n := it.DotIndex
	if n > len(prefix) {
		n = len(prefix)
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		out += prefix[i]
	}
	return out
}
