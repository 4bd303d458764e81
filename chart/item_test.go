package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earleygram/chartparse/grammar"
)

func TestItemCompletedAndNextTerm(t *testing.T) {
	rule, err := grammar.NewRule("NP", grammar.N("Det"), grammar.N("N"))
	require.NoError(t, err)
	col := NewColumn(0, "")

	it := NewItem(rule, 0, col)
	assert.False(t, it.Completed())
	assert.Equal(t, grammar.N("Det"), it.NextTerm())

	advanced := it.Advance(it, nil)
	assert.False(t, advanced.Completed())
	assert.Equal(t, grammar.N("N"), advanced.NextTerm())

	done := advanced.Advance(advanced, nil)
	assert.True(t, done.Completed())
}

func TestItemNextTermPanicsWhenCompleted(t *testing.T) {
	rule, _ := grammar.NewRule("N", grammar.T("dog"))
	col := NewColumn(0, "")
	it := NewItem(rule, 1, col)
	assert.True(t, it.Completed())
	assert.Panics(t, func() { it.NextTerm() })
}

func TestItemString(t *testing.T) {
	rule, _ := grammar.NewRule("NP", grammar.T("dog"), grammar.N("N"))
	col := NewColumn(2, "dog")
	it := NewItem(rule, 1, col)
	s := it.String()
	assert.Contains(t, s, "NP ->")
	assert.Contains(t, s, "•")
	assert.Contains(t, s, "'dog'")
}
