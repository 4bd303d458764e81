package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earleygram/chartparse"
)

func TestGrammarReachability(t *testing.T) {
	g := New()
	start, _ := NewRule(chartparse.START, N("S"))
	s, _ := NewRule("S", N("NP"), N("VP"))
	np, _ := NewRule("NP", N("Det"), N("N"))
	orphan, _ := NewRule("Orphan", N("N"))
	require.NoError(t, g.Insert(start))
	require.NoError(t, g.Insert(s))
	require.NoError(t, g.Insert(np))
	require.NoError(t, g.Insert(orphan))

	assert.True(t, g.HasNonterminal("NP"))
	assert.False(t, g.HasNonterminal("Orphan"))
	assert.Len(t, g.RulesFor("NP"), 1)
	assert.Nil(t, g.RulesFor("Orphan"))
	assert.Equal(t, start, g.StartRule())
}

// A rule is only reachable once something later links it in, even though it
// was inserted first — reachability must be recomputed on every insert, not
// just appended to incrementally.
func TestGrammarReachabilityRecomputedOnLateLink(t *testing.T) {
	g := New()
	vp, _ := NewRule("VP", N("V"))
	require.NoError(t, g.Insert(vp))
	assert.False(t, g.HasNonterminal("VP"))

	start, _ := NewRule(chartparse.START, N("VP"))
	require.NoError(t, g.Insert(start))
	assert.True(t, g.HasNonterminal("VP"))
}

func TestGrammarDuplicateStartRejected(t *testing.T) {
	g := New()
	s1, _ := NewRule(chartparse.START, N("A"))
	s2, _ := NewRule(chartparse.START, N("B"))
	require.NoError(t, g.Insert(s1))
	assert.ErrorIs(t, g.Insert(s2), ErrDuplicateStart)
}

func TestGrammarSchematicRulesPreservesUnreachable(t *testing.T) {
	g := New()
	orphan, _ := NewRule("Orphan", N("N"))
	require.NoError(t, g.Insert(orphan))
	assert.Len(t, g.SchematicRules(), 1)
	assert.Nil(t, g.RulesFor("Orphan"))
}
