package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/earleygram/chartparse/grammar"
)

func TestCountLeafItemIsOne(t *testing.T) {
	rule, _ := grammar.NewRule("N", grammar.T("dog"))
	col := NewColumn(0, "")
	it := NewItem(rule, 1, col)
	assert.Equal(t, 1, it.Count(NewVisited()))
}

func TestCountSpanSumsAmbiguousReductors(t *testing.T) {
	start := NewColumn(0, "")
	end := NewColumn(1, "x")
	s := newSpan("N", start, end)

	rule1, _ := grammar.NewRule("N", grammar.T("a"))
	rule2, _ := grammar.NewRule("N", grammar.T("b"))
	item1 := NewItem(rule1, 1, start)
	item2 := NewItem(rule2, 1, start)
	s.Add(item1)
	s.Add(item2)

	assert.Equal(t, 2, s.Count(NewVisited()))
}

func TestCountItemWithPredecessorMultiplies(t *testing.T) {
	start := NewColumn(0, "")
	mid := NewColumn(1, "a")
	end := NewColumn(2, "b")

	// predecessor span: two ways to derive "Det" (ambiguous)
	detRule1, _ := grammar.NewRule("Det", grammar.T("a"))
	detRule2, _ := grammar.NewRule("Det", grammar.T("a2"))
	detSpan := newSpan("Det", start, mid)
	detSpan.Add(NewItem(detRule1, 1, start))
	detSpan.Add(NewItem(detRule2, 1, start))

	npRule, _ := grammar.NewRule("NP", grammar.N("Det"), grammar.N("N"))
	predecessor := NewItem(npRule, 1, start)
	predecessor.EndCol = mid
	predecessor.ReductorSpan = detSpan

	// reductor span for N: three ways
	nRule, _ := grammar.NewRule("N", grammar.T("b"))
	nSpan := newSpan("N", mid, end)
	nSpan.Add(NewItem(nRule, 1, mid))
	nSpan.Add(NewItem(nRule, 1, mid))
	nSpan.Add(NewItem(nRule, 1, mid))

	completed := predecessor.Advance(predecessor, nSpan)
	assert.Equal(t, 2*3, completed.Count(NewVisited()))
}

func TestCountCycleContributesZero(t *testing.T) {
	start := NewColumn(0, "")

	spanA := newSpan("A", start, start)
	spanB := newSpan("B", start, start)

	ruleA, _ := grammar.NewRule("A", grammar.N("B"))
	ruleB, _ := grammar.NewRule("B", grammar.N("A"))

	itemA := NewItem(ruleA, 1, start)
	itemA.ReductorSpan = spanB
	spanA.Add(itemA)

	itemB := NewItem(ruleB, 1, start)
	itemB.ReductorSpan = spanA
	spanB.Add(itemB)

	assert.Equal(t, 0, spanA.Count(NewVisited()))
	assert.Equal(t, 0, spanB.Count(NewVisited()))
}

func TestEnumerateBracketedAndPOSYield(t *testing.T) {
	start := NewColumn(0, "")
	mid := NewColumn(1, "the")

	detRule, _ := grammar.NewRule("Det", grammar.T("the"))
	detItem := NewItem(detRule, 1, start)
	detItem.EndCol = mid

	span := newSpan("Det", start, mid)
	span.Add(detItem)

	bracketed := span.Enumerate(NewVisited(), Bracketed)
	assert.Equal(t, []string{"(Det the)"}, bracketed)

	posYield := span.Enumerate(NewVisited(), POSYield)
	assert.Equal(t, []string{"Det"}, posYield)
}
