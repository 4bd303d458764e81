/*
Package parser implements the Earley parser driver: initialization over a
fixed input, the predict/complete main loop, acceptance and derivation
queries, reparsing with a swapped grammar, and generator mode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/chart"
	"github.com/earleygram/chartparse/grammar"
	"github.com/earleygram/chartparse/vocab"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.parser")
}

// MaxCompletedDefault is the default per-column cap on completed states
// (spec §5/§7's chart-overflow guard).
const MaxCompletedDefault = 50000

// ErrTooManyItems is returned by GenerateSentence when a column's
// derivation count for the span length matching that column exceeds
// 2×MaxCompleted.
var ErrTooManyItems = fmt.Errorf("chartparse: generator exceeded item cap")

// prescanEntry caches a pre-scanned terminal reductor so it can be
// re-installed into its column without rescanning on every reparse.
type prescanEntry struct {
	colIndex int
	item     *chart.Item
}

// Parser recognizes a fixed input (or, in generator mode, drives
// derivation from a grammar alone) against a Grammar and Vocabulary,
// building a shared packed forest as it goes.
type Parser struct {
	g     *grammar.Grammar // the (normalized) grammar currently in force
	vocab *vocab.Vocabulary
	toks  []string

	columns      []*chart.Column
	prescanCache []prescanEntry

	maxWords     int
	MaxCompleted int
}

// New constructs a Parser over tokens, fixed for its lifetime: it builds
// one Column per input position, pre-scans every token against vocabulary
// to seed terminal reductors, and matches every lexicalized rule's literal
// prefix against the input. g is normalized (variable renaming + POS rule
// assignment, spec §4.2) before use; the caller's Grammar is left
// untouched. maxWords is recorded on the Parser but not read by
// ParseSentence or GenerateSentence; generator mode takes its bound from
// NewGenerator, which builds maxWords+1 columns.
func New(g *grammar.Grammar, v *vocab.Vocabulary, tokens []string, maxWords int) (*Parser, error) {
	normalized, err := grammar.Normalize(g, v.PartsOfSpeech.Contains)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		g:            normalized,
		vocab:        v,
		toks:         tokens,
		maxWords:     maxWords,
		MaxCompleted: MaxCompletedDefault,
	}
	p.buildColumns()
	p.prescan()
	p.matchLexicalRules()
	return p, nil
}

func (p *Parser) buildColumns() {
	n := len(p.toks)
	p.columns = make([]*chart.Column, n+1)
	p.columns[0] = chart.NewColumn(0, "")
	for i := 1; i <= n; i++ {
		p.columns[i] = chart.NewColumn(i, p.toks[i-1])
	}
}

// prescan looks up, for each input position, the parts of speech the
// vocabulary assigns to that token, and inserts a completed item for the
// corresponding process-wide scanned rule directly into the preceding
// column's reductors (bypassing the completion agenda, since these items
// are known-complete before the main loop ever runs). Each (column index,
// item) pair is cached so a later reparse can restore it without
// rescanning the vocabulary.
func (p *Parser) prescan() {
	for i := 0; i < len(p.toks); i++ {
		token := p.toks[i]
		for _, pos := range p.vocab.POSFor(token) {
			rule, ok := p.vocab.ScannedRules[pos]
			if !ok {
				continue
			}
			start := p.columns[i]
			end := p.columns[i+1]
			item := chart.NewItem(rule, 1, start)
			item.EndCol = end
			span, _ := start.AddReductor(item)
			_ = span
			p.prescanCache = append(p.prescanCache, prescanEntry{colIndex: i, item: item})
			tracer().Debugf("prescan: %s @ column %d matches %q", pos, i, token)
		}
	}
}

// matchLexicalRules attempts, for every column and every lexical rule in
// the grammar, to match the rule's leading literal prefix against the
// input tokens starting just after that column. Each prefix entry may
// itself be a multi-word literal (e.g. 'San Francisco'), so a match
// consumes entries and input words at different rates; matchPrefix reports
// both. A full-prefix match (entries == len(rhs)) is inserted as a
// pre-completed span; a partial one as a non-completed item positioned
// past the matched entries.
func (p *Parser) matchLexicalRules() {
	for i := range p.columns {
		start := p.columns[i]
		for _, rule := range p.g.SchematicRules() {
			if !rule.Lexical {
				continue
			}
			prefix := rule.LexicalPrefix()
			entries, words := p.matchPrefix(i, prefix)
			if entries == 0 {
				continue
			}
			if entries == len(rule.RHS) {
				end := p.columns[i+words]
				item := chart.NewItem(rule, entries, start)
				item.EndCol = end
				start.AddReductor(item)
			} else if i+words < len(p.columns) {
				item := chart.NewItem(rule, entries, start)
				p.columns[i+words].AddState(item, p.g)
			}
		}
	}
}

// matchPrefix reports how many leading entries of prefix match the input
// starting at word position startCol, and how many input words those
// entries consumed in total (a multi-word literal entry like "San
// Francisco" consumes two words for one entry). It returns (0, 0) on any
// mismatch or if the input runs out, and (len(prefix), total-words) on a
// full match.
func (p *Parser) matchPrefix(startCol int, prefix []string) (entries, words int) {
	pos := startCol
	for _, want := range prefix {
		wantWords := strings.Fields(want)
		if pos+len(wantWords) > len(p.toks) {
			return 0, 0
		}
		for j, w := range wantWords {
			if p.toks[pos+j] != w {
				return 0, 0
			}
		}
		pos += len(wantWords)
		words += len(wantWords)
		entries++
	}
	return entries, words
}

// ParseSentence runs a fresh parse using the grammar given to New, seeding
// column 0 with the synthetic Gamma -> START item and draining the main
// loop. It returns whether the input was accepted and, if so, 1 (else 0),
// matching the external derivation_indicator contract. Calling it more than
// once reproduces the same result bit-for-bit, since every call resets the
// chart before reseeding it (spec §8, invariant 5 applies equally to the
// fixed-grammar case).
func (p *Parser) ParseSentence() (accepted bool, derivationIndicator int) {
	return p.resetAndRun()
}

// ParseSentenceWithGrammar reparses the same fixed input against a new
// grammar: it swaps the grammar reference, resets every column, restores
// the cached pre-scanned terminal reductors, and re-runs the main loop.
// Reparsing is idempotent: calling it twice with the same grammar produces
// bit-identical results (spec §8, invariant 5).
func (p *Parser) ParseSentenceWithGrammar(g *grammar.Grammar) (accepted bool, derivationIndicator int, err error) {
	normalized, err := grammar.Normalize(g, p.vocab.PartsOfSpeech.Contains)
	if err != nil {
		return false, 0, err
	}
	p.g = normalized
	accepted, derivationIndicator = p.resetAndRun()
	return accepted, derivationIndicator, nil
}

// resetAndRun clears every column, restores the cached pre-scanned
// terminals, re-matches lexicalized rules against the current grammar (this
// cannot be cached the way pre-scan is, since two grammars may define
// different lexical rules over the same fixed input), and runs the main
// loop.
func (p *Parser) resetAndRun() (accepted bool, derivationIndicator int) {
	for _, col := range p.columns {
		col.Reset()
	}
	for _, entry := range p.prescanCache {
		entry.item.StartCol.AddReductor(entry.item)
	}
	p.matchLexicalRules()
	return p.runMainLoop()
}

// runMainLoop seeds column 0 with the start item and drains predict/complete
// across every column in index order, enforcing the completed-state cap.
func (p *Parser) runMainLoop() (accepted bool, derivationIndicator int) {
	startRule := p.g.StartRule()
	if startRule == nil {
		return false, 0
	}
	gammaRule, err := grammar.NewRule(chartparse.Gamma, grammar.N(chartparse.START))
	if err != nil {
		panic(err)
	}
	seed := chart.NewItem(gammaRule, 0, p.columns[0])
	p.columns[0].AddState(seed, p.g)

	for _, col := range p.columns {
		p.drainColumn(col)
		if col.CompletedStateCount() > p.MaxCompleted {
			tracer().Errorf("parser: column %d exceeded completed-state cap (%d)", col.Index, p.MaxCompleted)
			p.drainColumn(col) // drain remaining agenda entries before returning
			return false, 0
		}
	}
	return p.HasDerivation(), boolToIndicator(p.HasDerivation())
}

// drainColumn alternates Complete and Predict until both agendas are
// empty: an epsilon completion can repopulate the completion agenda after
// Predict has already run, so a single pass over each would lose
// derivations.
func (p *Parser) drainColumn(col *chart.Column) {
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
			p.predict(col, nt)
		}
	}
}

// predict inserts a fresh dot-zero item for every non-lexical rule with the
// given lhs into col.
func (p *Parser) predict(col *chart.Column, nonterminal chartparse.Symbol) {
	for _, rule := range p.g.RulesFor(nonterminal) {
		if rule.Lexical {
			continue
		}
		item := chart.NewItem(rule, 0, col)
		col.AddState(item, p.g)
	}
}

// complete packs reductorItem into its start column's reductors and, the
// first time this (lhs, start, end) signature is seen, advances every
// waiting predecessor across it.
func (p *Parser) complete(col *chart.Column, reductorItem *chart.Item) {
	start := reductorItem.StartCol
	lhs := reductorItem.Rule.LHS
	span, alreadyExisted := start.AddReductor(reductorItem)
	if alreadyExisted {
		return
	}
	for _, pred := range start.Predecessors(lhs) {
		advanced := pred.Advance(pred, span)
		col.AddState(advanced, p.g)
	}
}

// HasDerivation reports whether column 0 contains a Span with lhs START
// spanning the whole input.
func (p *Parser) HasDerivation() bool {
	return p.rootSpan() != nil
}

func (p *Parser) rootSpan() *chart.Span {
	n := len(p.toks)
	return p.columns[0].StartSpan(chartparse.START, n)
}

// CountDerivations returns the number of derivation trees represented by
// the shared forest rooted at the accepting START span, or 0 if the input
// was not accepted.
func (p *Parser) CountDerivations() int {
	root := p.rootSpan()
	if root == nil {
		return 0
	}
	return root.Count(chart.NewVisited())
}

// FormattedStrings enumerates every derivation of the span rooted at
// columnIndex (0 for the whole input's root span), as fully-bracketed
// trees, or — if posYieldOnly is true — as their bare part-of-speech
// yields.
func (p *Parser) FormattedStrings(columnIndex int, posYieldOnly bool) []string {
	n := len(p.toks)
	root := p.columns[columnIndex].StartSpan(chartparse.START, n-columnIndex)
	if root == nil {
		return nil
	}
	flag := chart.Bracketed
	if posYieldOnly {
		flag = chart.POSYield
	}
	return root.Enumerate(chart.NewVisited(), flag)
}

func boolToIndicator(b bool) int {
	if b {
		return 1
	}
	return 0
}
