package parser

import (
	"strings"

	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/chart"
	"github.com/earleygram/chartparse/grammar"
	"github.com/earleygram/chartparse/vocab"
)

// NewGenerator builds a Parser for generator mode: there is no fixed input
// to scan against, only a bound on how many words a generated sentence may
// contain. Columns are built empty (no tokens), so pre-scan and
// lexicalized-rule matching have nothing to match against and are skipped;
// the grammar is still normalized exactly as for recognition.
func NewGenerator(g *grammar.Grammar, v *vocab.Vocabulary, maxWords int) (*Parser, error) {
	normalized, err := grammar.Normalize(g, v.PartsOfSpeech.Contains)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		g:            normalized,
		vocab:        v,
		toks:         nil,
		maxWords:     maxWords,
		MaxCompleted: MaxCompletedDefault,
	}
	p.columns = make([]*chart.Column, maxWords+1)
	for i := 0; i <= maxWords; i++ {
		p.columns[i] = chart.NewColumn(i, "")
	}
	return p, nil
}

// GenerateSentence drives the same predict/complete machinery as
// ParseSentence, but with no input tokens to scan against: the chart is
// seeded only with the Gamma -> START item and advanced purely by Predict,
// up to maxWords columns. A lexicalized rule's literal prefix is treated as
// unconditionally satisfied — there is nothing to compare it against — so
// the dot is advanced across the whole prefix immediately on Predict,
// exactly as if every literal had matched.
//
// After each column it counts the derivations of the START span whose
// length equals that column's index (a sentence of exactly that many
// words); once that count exceeds 2×MaxCompleted it aborts with
// ErrTooManyItems, mirroring the spec's generator-overflow guard.
func (p *Parser) GenerateSentence() (accepted bool, derivationIndicator int, err error) {
	startRule := p.g.StartRule()
	if startRule == nil {
		return false, 0, nil
	}
	gammaRule, gerr := grammar.NewRule(chartparse.Gamma, grammar.N(chartparse.START))
	if gerr != nil {
		panic(gerr)
	}
	seed := chart.NewItem(gammaRule, 0, p.columns[0])
	p.columns[0].AddState(seed, p.g)

	for _, col := range p.columns {
		p.drainColumnGenerating(col)
		if col.CompletedStateCount() > p.MaxCompleted {
			tracer().Errorf("parser: generator column %d exceeded completed-state cap (%d)", col.Index, p.MaxCompleted)
			return false, 0, nil
		}
		root := p.columns[0].StartSpan(chartparse.START, col.Index)
		if root != nil && root.Count(chart.NewVisited()) > 2*p.MaxCompleted {
			return false, 0, ErrTooManyItems
		}
	}
	accepted = p.HasAnyDerivation()
	return accepted, boolToIndicator(accepted), nil
}

// drainColumnGenerating is drainColumn's generator-mode twin: Predict's
// freshly inserted items expecting a lexical rule are advanced across their
// whole literal prefix unconditionally, since generator mode has no input
// to scan against.
func (p *Parser) drainColumnGenerating(col *chart.Column) {
	for !col.CompleteEmpty() || !col.PredictEmpty() {
		for !col.CompleteEmpty() {
			item := col.DrainComplete()
			p.complete(col, item)
		}
		for !col.PredictEmpty() {
			nt, ok := col.DrainPredict()
			if !ok {
				break
			}
			p.predictGenerating(col, nt)
		}
	}
}

// predictGenerating inserts a fresh item for every non-lexical rule with the
// given lhs, and — for every lexical rule — an item with the dot advanced
// past the whole literal prefix, since there is no real input to verify it
// against. That item is inserted as many columns later as the prefix has
// words; one that would end past the last column is dropped.
func (p *Parser) predictGenerating(col *chart.Column, nonterminal chartparse.Symbol) {
	for _, rule := range p.g.RulesFor(nonterminal) {
		if !rule.Lexical {
			item := chart.NewItem(rule, 0, col)
			col.AddState(item, p.g)
			continue
		}
		prefix := rule.LexicalPrefix()
		words := 0
		for _, lit := range prefix {
			words += len(strings.Fields(lit))
		}
		if col.Index+words >= len(p.columns) {
			continue
		}
		item := chart.NewItem(rule, len(prefix), col)
		p.columns[col.Index+words].AddState(item, p.g)
	}
}

// HasAnyDerivation reports whether any column 0..maxWords holds a completed
// START span spanning exactly that column's width — i.e. whether the
// grammar generates at least one sentence no longer than maxWords.
func (p *Parser) HasAnyDerivation() bool {
	for _, col := range p.columns {
		if p.columns[0].StartSpan(chartparse.START, col.Index) != nil {
			return true
		}
	}
	return false
}

// GeneratedStrings enumerates every derivation of the START span of the
// given length (number of generated words), as fully-bracketed trees or, if
// posYieldOnly is true, bare part-of-speech yields. Unlike FormattedStrings,
// generator mode has no single fixed input length, so the length must be
// named explicitly.
func (p *Parser) GeneratedStrings(length int, posYieldOnly bool) []string {
	root := p.columns[0].StartSpan(chartparse.START, length)
	if root == nil {
		return nil
	}
	flag := chart.Bracketed
	if posYieldOnly {
		flag = chart.POSYield
	}
	return root.Enumerate(chart.NewVisited(), flag)
}
