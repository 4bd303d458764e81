package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/earleygram/chartparse/grammar"
)

func TestSpanLenAndString(t *testing.T) {
	start := NewColumn(2, "x")
	end := NewColumn(5, "y")
	s := newSpan("NP", start, end)
	assert.Equal(t, 3, s.Len())
	assert.Contains(t, s.String(), "NP")
	assert.Contains(t, s.String(), "2")
	assert.Contains(t, s.String(), "5")
}

func TestSpanAddNeverDedupes(t *testing.T) {
	start := NewColumn(0, "")
	end := NewColumn(1, "x")
	s := newSpan("N", start, end)
	rule, _ := grammar.NewRule("N", grammar.T("fish"))
	item1 := NewItem(rule, 1, start)
	item2 := NewItem(rule, 1, start)
	s.Add(item1)
	s.Add(item2)
	assert.Equal(t, 2, s.Reductors.Size())
}
