/*
Package chart implements the Earley chart itself: Columns, Items and the
packed Span nodes that represent local ambiguity, plus the forest-traversal
operations (counting and enumerating derivations) that run over them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package chart

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"

	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.chart")
}

// Item is a dotted rule paired with a start column and back-pointers
// recording how it was derived. Equality/hashing use only
// (rule, dot_index, start_col.index) — EndCol is derived from where the
// item currently lives and plays no role in identity.
type Item struct {
	Rule     *grammar.Rule
	DotIndex int
	StartCol *Column
	EndCol   *Column

	// Predecessor is the item with one fewer dot that was advanced to
	// produce this one; ReductorSpan is the packed completed node that
	// advanced it (nil for items produced by Predict).
	Predecessor  *Item
	ReductorSpan *Span
}

// NewItem returns an item at the given dot, rooted at startCol. EndCol is
// unset until the item is inserted into a column via Column.AddState.
func NewItem(rule *grammar.Rule, dot int, startCol *Column) *Item {
	return &Item{Rule: rule, DotIndex: dot, StartCol: startCol}
}

// Completed reports whether the dot has advanced past the entire rhs.
func (it *Item) Completed() bool {
	return it.DotIndex >= len(it.Rule.RHS)
}

// NextTerm returns the rhs entry immediately after the dot. Calling it on a
// completed item is a programming error and panics, mirroring the
// precondition the spec states for next_term.
func (it *Item) NextTerm() grammar.RHSSymbol {
	if it.Completed() {
		panic("chart: NextTerm called on a completed item")
	}
	return it.Rule.RHS[it.DotIndex]
}

// Advance returns a new item with the dot moved one position to the right,
// sharing rule and start column but carrying fresh back-pointers.
func (it *Item) Advance(predecessor *Item, reductorSpan *Span) *Item {
	return &Item{
		Rule:         it.Rule,
		DotIndex:     it.DotIndex + 1,
		StartCol:     it.StartCol,
		Predecessor:  predecessor,
		ReductorSpan: reductorSpan,
	}
}

// key computes the identity of an item as specified: (rule, dot_index,
// start_col.index). We hash the rule's pointer identity (via its string
// form, which is stable for a given *grammar.Rule since rules are never
// mutated after construction) together with the dot index and start
// column, using structhash the way the teacher's lr/earley package keys
// its backlink map.
func (it *Item) key() string {
	h, err := structhash.Hash(struct {
		Rule     string
		DotIndex int
		Start    int
	}{
		Rule:     fmt.Sprintf("%p", it.Rule),
		DotIndex: it.DotIndex,
		Start:    it.StartCol.Index,
	}, 1)
	if err != nil {
		panic(err)
	}
	return h
}

func (it *Item) String() string {
	var b []byte
	b = append(b, it.Rule.LHS...)
	b = append(b, " ->"...)
	for i, sym := range it.Rule.RHS {
		if i == it.DotIndex {
			b = append(b, " •"...)
		}
		b = append(b, ' ')
		if sym.Literal {
			b = append(b, '\'')
			b = append(b, sym.Symbol...)
			b = append(b, '\'')
		} else {
			b = append(b, sym.Symbol...)
		}
	}
	if it.Completed() {
		b = append(b, " •"...)
	}
	start := -1
	if it.StartCol != nil {
		start = it.StartCol.Index
	}
	return fmt.Sprintf("[%s, %d]", string(b), start)
}

// chartparse.Symbol alias kept local to avoid repeating the import path in
// every signature below.
type symbol = chartparse.Symbol
