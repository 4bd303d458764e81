package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/grammar"
	"github.com/earleygram/chartparse/vocab"
)

// ppAttachmentGrammar is the classic ambiguous PP-attachment grammar used
// throughout these tests:
//
//	START -> S
//	S     -> NP VP
//	NP    -> PN
//	NP    -> D N
//	NP    -> NP PP
//	VP    -> V1 NP
//	VP    -> VP PP
//	PP    -> P NP
const ppAttachmentGrammar = `
START -> S
S -> NP VP
NP -> PN
NP -> D N
NP -> NP PP
VP -> V1 NP
VP -> VP PP
PP -> P NP
`

const ppAttachmentVocab = `{
  "POSWithPossibleWords": {
    "D": ["the"],
    "N": ["boy", "telescope"],
    "V1": ["saw"],
    "P": ["with"],
    "PN": ["John", "Mary"]
  }
}`

func loadPPGrammarAndVocab(t *testing.T) (*grammar.Grammar, *vocab.Vocabulary) {
	t.Helper()
	g, err := grammar.ReadFile(strings.NewReader(ppAttachmentGrammar))
	require.NoError(t, err)
	v, err := vocab.Load(strings.NewReader(ppAttachmentVocab))
	require.NoError(t, err)
	return g, v
}

// S1: an unambiguous sentence accepts with exactly one derivation and the
// expected part-of-speech yield.
func TestS1UnambiguousSentence(t *testing.T) {
	g, v := loadPPGrammarAndVocab(t)
	toks, err := vocab.Tokenize("John saw Mary")
	require.NoError(t, err)

	p, err := New(g, v, toks, 0)
	require.NoError(t, err)
	accepted, indicator := p.ParseSentence()
	assert.True(t, accepted)
	assert.Equal(t, 1, indicator)
	assert.Equal(t, 1, p.CountDerivations())
	assert.Equal(t, []string{"PN V1 PN"}, p.FormattedStrings(0, true))
}

// S2: PP-attachment ambiguity yields exactly two derivations.
func TestS2PPAttachmentAmbiguity(t *testing.T) {
	g, v := loadPPGrammarAndVocab(t)
	toks, err := vocab.Tokenize("the boy saw the boy with the telescope")
	require.NoError(t, err)

	p, err := New(g, v, toks, 0)
	require.NoError(t, err)
	accepted, indicator := p.ParseSentence()
	assert.True(t, accepted)
	assert.Equal(t, 1, indicator)
	assert.Equal(t, 2, p.CountDerivations())

	yields := p.FormattedStrings(0, true)
	assert.Len(t, yields, 2)
	for _, y := range yields {
		assert.Equal(t, "D N V1 D N P D N", y)
	}
	bracketed := p.FormattedStrings(0, false)
	assert.Len(t, bracketed, 2)
	assert.NotEqual(t, bracketed[0], bracketed[1])
}

// S3: a single unattachable token is rejected outright.
func TestS3RejectsIncompleteInput(t *testing.T) {
	g, v := loadPPGrammarAndVocab(t)
	toks, err := vocab.Tokenize("saw")
	require.NoError(t, err)

	p, err := New(g, v, toks, 0)
	require.NoError(t, err)
	accepted, indicator := p.ParseSentence()
	assert.False(t, accepted)
	assert.Equal(t, 0, indicator)
}

// S4: a unit-production cycle (A -> B, B -> A, A -> 'x') still accepts and
// counts exactly one finite derivation; the cycle contributes zero.
func TestS4UnitCycleAccepts(t *testing.T) {
	src := `
START -> A
A -> B
B -> A
A -> 'x'
`
	g, err := grammar.ReadFile(strings.NewReader(src))
	require.NoError(t, err)
	v, err := vocab.Load(strings.NewReader(`{"POSWithPossibleWords": {}}`))
	require.NoError(t, err)
	toks, err := vocab.Tokenize("x")
	require.NoError(t, err)

	p, err := New(g, v, toks, 0)
	require.NoError(t, err)
	accepted, indicator := p.ParseSentence()
	assert.True(t, accepted)
	assert.Equal(t, 1, indicator)
	assert.Equal(t, 1, p.CountDerivations())

	assert.NotPanics(t, func() { p.FormattedStrings(0, false) })
}

// S5: a completion fan-out that exceeds the per-column cap causes a clean
// rejection with drained agendas. A chain of nullable nonterminals, each
// completing immediately via Predict, is used to manufacture the fan-out
// deterministically against a small MaxCompleted override rather than the
// real 50000 default.
func TestS5ChartOverflowRejectsCleanly(t *testing.T) {
	g := grammar.New()
	const chainLen = 6
	var rhs []grammar.RHSSymbol
	for i := 1; i <= chainLen; i++ {
		rhs = append(rhs, grammar.N(chartparse.Symbol(fmt.Sprintf("R%d", i))))
	}
	sRule, err := grammar.NewRule("S", rhs...)
	require.NoError(t, err)
	startRule, err := grammar.NewRule(chartparse.START, grammar.N("S"))
	require.NoError(t, err)
	require.NoError(t, g.Insert(startRule))
	require.NoError(t, g.Insert(sRule))
	for i := 1; i <= chainLen; i++ {
		r, err := grammar.NewRule(chartparse.Symbol(fmt.Sprintf("R%d", i)))
		require.NoError(t, err)
		require.NoError(t, g.Insert(r))
	}
	v, err := vocab.Load(strings.NewReader(`{"POSWithPossibleWords": {}}`))
	require.NoError(t, err)

	p, err := New(g, v, nil, 0)
	require.NoError(t, err)
	p.MaxCompleted = 3 // well below chainLen so the cap trips deterministically

	accepted, indicator := p.ParseSentence()
	assert.False(t, accepted)
	assert.Equal(t, 0, indicator)
	assert.True(t, p.columns[0].CompleteEmpty())
	assert.True(t, p.columns[0].PredictEmpty())
}

// S6: reparsing with a grammar lacking an essential rule rejects, and
// reparsing again with the original grammar reproduces the original result
// bit-for-bit.
func TestS6ReparseIdempotenceAndIndependence(t *testing.T) {
	g1, v := loadPPGrammarAndVocab(t)
	toks, err := vocab.Tokenize("John saw Mary")
	require.NoError(t, err)

	p, err := New(g1, v, toks, 0)
	require.NoError(t, err)
	accepted1, indicator1 := p.ParseSentence()
	require.True(t, accepted1)
	count1 := p.CountDerivations()

	// g2 drops the VP -> V1 NP rule the input depends on.
	g2src := `
START -> S
S -> NP VP
NP -> PN
NP -> D N
VP -> VP PP
PP -> P NP
`
	g2, err := grammar.ReadFile(strings.NewReader(g2src))
	require.NoError(t, err)
	accepted2, indicator2, err := p.ParseSentenceWithGrammar(g2)
	require.NoError(t, err)
	assert.False(t, accepted2)
	assert.Equal(t, 0, indicator2)

	accepted3, indicator3, err := p.ParseSentenceWithGrammar(g1)
	require.NoError(t, err)
	assert.Equal(t, accepted1, accepted3)
	assert.Equal(t, indicator1, indicator3)
	assert.Equal(t, count1, p.CountDerivations())
}

func TestNewRejectsGrammarMissingStart(t *testing.T) {
	g := grammar.New()
	r, _ := grammar.NewRule("S", grammar.N("NP"))
	require.NoError(t, g.Insert(r))
	v, err := vocab.Load(strings.NewReader(`{"POSWithPossibleWords": {}}`))
	require.NoError(t, err)
	_, err = New(g, v, nil, 0)
	assert.Error(t, err)
}
