package chart

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/earleygram/chartparse/grammar"
)

// Span is a packed local-ambiguity node: the set of completed (reductor)
// items sharing (lhs, start_col, end_col). Every reductor in Reductors has
// the same LHS and the same StartCol.Index/EndCol.Index as the span
// itself.
//
// Span.Add never dedupes — each reductor is a distinct derivation, even if
// structurally identical to one already present (e.g. two different unit
// chains that happen to complete the same dotted rule).
type Span struct {
	LHS       symbol
	StartCol  *Column
	EndCol    *Column
	Reductors *arraylist.List
}

// newSpan returns an empty packed node for (lhs, start, end).
func newSpan(lhs symbol, start, end *Column) *Span {
	return &Span{LHS: lhs, StartCol: start, EndCol: end, Reductors: arraylist.New()}
}

// Add appends a reductor item to the span.
func (s *Span) Add(item *Item) {
	s.Reductors.Add(item)
}

// Len returns end - start, the length of input this span covers.
func (s *Span) Len() int {
	return s.EndCol.Index - s.StartCol.Index
}

func (s *Span) String() string {
	return fmt.Sprintf("%s(%d…%d)", s.LHS, s.StartCol.Index, s.EndCol.Index)
}

// spontaneousDotShift is the second of Earley's two completer triggers
// (see spec §4.5 and §9): when a predecessor item expecting symbol s.LHS is
// inserted into s.StartCol *after* s already exists there (i.e. the
// reductor arrived first), synthesize the advanced item directly against
// every reductor already packed into s, rather than waiting for a future
// Complete() call that will never come for this particular predecessor.
//
// The synthesized item is inserted into s.EndCol, exactly as a Complete()
// triggered by a fresh reductor would insert one.
func spontaneousDotShift(predecessor *Item, s *Span, g *grammar.Grammar) {
	advanced := predecessor.Advance(predecessor, s)
	s.EndCol.AddState(advanced, g)
}
