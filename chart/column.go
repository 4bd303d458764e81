package chart

import (
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/earleygram/chartparse/grammar"
)

// Column is a single Earley set, identified by its integer index in
// [0, n]. Column 0 carries no token; column i>0 carries the token at input
// position i-1.
type Column struct {
	Index int
	Token string // empty for column 0

	// predecessors maps the symbol expected after the dot to the
	// non-completed items currently waiting for it.
	predecessors map[symbol][]*Item

	// reductors indexes this column's completed items, packed by Span,
	// keyed lhs -> length -> Span. A Span is owned by the column where
	// its reductors start.
	reductors map[symbol]map[int]*Span

	actionableComplete *completedAgenda
	actionablePredict  *linkedhashset.Set // FIFO of symbol, at most one entry each

	completedStateCount int
}

// NewColumn returns an empty column at the given index, for the given
// input token (ignored for index 0).
func NewColumn(index int, token string) *Column {
	return &Column{
		Index:               index,
		Token:               token,
		predecessors:        make(map[symbol][]*Item),
		reductors:           make(map[symbol]map[int]*Span),
		actionableComplete:  newCompletedAgenda(),
		actionablePredict:   linkedhashset.New(),
		completedStateCount: 0,
	}
}

// Reset clears predecessors, reductors, both agendas and the counter,
// preparing the column for a reparse. Pre-scanned terminal reductors are
// re-installed by the caller (package parser) immediately afterward, from
// its cache of (column index, item) pairs.
func (c *Column) Reset() {
	c.predecessors = make(map[symbol][]*Item)
	c.reductors = make(map[symbol]map[int]*Span)
	c.actionableComplete.clear()
	c.actionablePredict.Clear()
	c.completedStateCount = 0
}

// Predecessors returns the non-completed items currently waiting for sym,
// in insertion order.
func (c *Column) Predecessors(sym symbol) []*Item {
	return c.predecessors[sym]
}

// SpansFor returns every Span packed into this column's reductors under
// lhs, across all lengths, in unspecified order. Used by spontaneous dot
// shift (step 2 of AddState).
func (c *Column) SpansFor(lhs symbol) []*Span {
	byLength := c.reductors[lhs]
	if byLength == nil {
		return nil
	}
	spans := make([]*Span, 0, len(byLength))
	for _, s := range byLength {
		spans = append(spans, s)
	}
	return spans
}

// AddState installs item into this column (setting item.EndCol = c first),
// following spec §4.6:
//
//  1. item.EndCol = c.
//  2. If not completed: let t be the symbol after the dot. If no
//     predecessor is already waiting for t and t keys into g's reachable
//     rule map, enqueue t for Predict (at most once per column). Append
//     item to predecessors[t]. If reductors already contain spans under t
//     in this column, immediately run spontaneous dot shift for item
//     against every such span.
//  3. If completed: increment completedStateCount and enqueue into the
//     completed-states agenda.
func (c *Column) AddState(item *Item, g *grammar.Grammar) {
	item.EndCol = c
	if !item.Completed() {
		t := item.NextTerm().Symbol
		if len(c.predecessors[t]) == 0 && g.HasNonterminal(t) {
			c.actionablePredict.Add(t)
		}
		c.predecessors[t] = append(c.predecessors[t], item)
		tracer().Debugf("add_state: %s [%s] waiting on %s", item, item.key(), t)
		for _, span := range c.SpansFor(t) {
			spontaneousDotShift(item, span, g)
		}
		return
	}
	c.completedStateCount++
	c.actionableComplete.enqueue(item)
	tracer().Debugf("add_state: %s [%s] completed", item, item.key())
}

// AddReductor inserts a completed item into c's reductors (c acting as the
// item's start column), returning the Span the item now belongs to and
// whether a span under this (lhs, length) signature already existed
// (local ambiguity). When alreadyExisted is true the item has merely been packed into
// an existing span and the caller (Complete) must not re-notify
// predecessors, since they were already notified the first time this
// signature appeared.
func (c *Column) AddReductor(item *Item) (span *Span, alreadyExisted bool) {
	lhs := item.Rule.LHS
	length := item.EndCol.Index - c.Index
	byLength, ok := c.reductors[lhs]
	if !ok {
		byLength = make(map[int]*Span)
		c.reductors[lhs] = byLength
	}
	if s, ok := byLength[length]; ok {
		s.Add(item)
		return s, true
	}
	s := newSpan(lhs, c, item.EndCol)
	s.Add(item)
	byLength[length] = s
	return s, false
}

// DrainPredict pops the next nonterminal queued for Predict, or ("", false)
// if empty.
func (c *Column) DrainPredict() (symbol, bool) {
	values := c.actionablePredict.Values()
	if len(values) == 0 {
		return "", false
	}
	sym := values[0].(symbol)
	c.actionablePredict.Remove(sym)
	return sym, true
}

// DrainComplete pops the next completed item from the completion agenda,
// or nil if empty.
func (c *Column) DrainComplete() *Item {
	return c.actionableComplete.dequeue()
}

// PredictEmpty reports whether the predict agenda is empty.
func (c *Column) PredictEmpty() bool {
	return c.actionablePredict.Empty()
}

// CompleteEmpty reports whether the completion agenda is empty.
func (c *Column) CompleteEmpty() bool {
	return c.actionableComplete.empty()
}

// CompletedStateCount returns the number of completed items inserted into
// this column so far, used by the overflow guard.
func (c *Column) CompletedStateCount() int {
	return c.completedStateCount
}

// StartSpan returns the Span for (lhs, length) if one exists in this
// column's reductors, or nil.
func (c *Column) StartSpan(lhs symbol, length int) *Span {
	byLength, ok := c.reductors[lhs]
	if !ok {
		return nil
	}
	return byLength[length]
}
