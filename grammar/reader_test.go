package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earleygram/chartparse"
)

func TestReadFileBasic(t *testing.T) {
	src := `# a tiny grammar
1. START -> S
S -> NP VP
NP -> Det N
VP -> V
Det -> 'the'
N -> 'dog'
V -> 'barks'
`
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.NotNil(t, g.StartRule())
	assert.True(t, g.HasNonterminal("S"))
	assert.True(t, g.HasNonterminal("Det"))

	detRules := g.RulesFor("Det")
	require.Len(t, detRules, 1)
	assert.True(t, detRules[0].Lexical)
	assert.Equal(t, []string{"the"}, detRules[0].LexicalPrefix())
}

func TestReadFileSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# comment\n\nSTART -> A\nA -> 'x'\n"
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, g.SchematicRules(), 2)
}

func TestReadFileSkipsLinesWithoutArrow(t *testing.T) {
	src := "START -> A\njust some junk\nA -> 'x'\n"
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, g.SchematicRules(), 2)
}

func TestReadFileMultiWordLiteral(t *testing.T) {
	src := "START -> PN\nPN -> 'San Francisco'\n"
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	rules := g.RulesFor("PN")
	require.Len(t, rules, 1)
	assert.Equal(t, []string{"San Francisco"}, rules[0].LexicalPrefix())
}

func TestReadFileEpsilonRule(t *testing.T) {
	src := "START -> S\nS -> NP\nNP ->\n"
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	rules := g.RulesFor("NP")
	require.Len(t, rules, 1)
	assert.True(t, rules[0].IsEpsilon())
}

func TestReadFileSkipsMalformedRuleSilently(t *testing.T) {
	// A literal following a non-terminal is a hard error from NewRule, but
	// ReadFile's line-reading policy is tolerant: it logs and continues.
	src := "START -> S\nS -> N 'quickly'\nS -> 'ok'\n"
	g, err := ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, g.SchematicRules(), 2)
	assert.Equal(t, chartparse.START, g.StartRule().LHS)
}
