/*
Package vocab loads the surface-form vocabulary consumed by the Earley
parser's pre-scan step, and owns the process-wide constants the parser
treats as injected configuration: the set of part-of-speech symbols and the
table of canonical scanned rules, one per part of speech.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vocab

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/earleygram/chartparse"
	"github.com/earleygram/chartparse/grammar"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.vocab")
}

// fileFormat mirrors the external vocabulary-file interface: a JSON object
// whose single required property POSWithPossibleWords maps a POS symbol to
// an array of lowercase surface forms.
type fileFormat struct {
	POSWithPossibleWords map[string][]string `json:"POSWithPossibleWords"`
}

// Vocabulary maps surface tokens to the part-of-speech categories they may
// realize, and vice versa.
type Vocabulary struct {
	POSWithPossibleWords map[chartparse.Symbol][]string
	WordWithPossiblePOS  map[string][]chartparse.Symbol

	// PartsOfSpeech is the process-wide set of part-of-speech symbols
	// derived from this vocabulary. ScannedRules is the canonical,
	// read-only "POS -> 'token'"-shaped rule for each such symbol (see
	// chartparse.Wildcard). Both are populated once here, before any
	// Parser is constructed, and never written to afterward.
	PartsOfSpeech POSSet
	ScannedRules  map[chartparse.Symbol]*grammar.Rule
}

// POSSet is the injected, process-wide set of part-of-speech identifiers.
type POSSet map[chartparse.Symbol]struct{}

// Contains reports whether sym is a known part of speech.
func (s POSSet) Contains(sym chartparse.Symbol) bool {
	_, ok := s[sym]
	return ok
}

// Load reads a vocabulary JSON document from r and builds the inverse
// WordWithPossiblePOS index, the PartsOfSpeech set, and the ScannedRules
// table.
func Load(r io.Reader) (*Vocabulary, error) {
	var doc fileFormat
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	v := &Vocabulary{
		POSWithPossibleWords: make(map[chartparse.Symbol][]string, len(doc.POSWithPossibleWords)),
		WordWithPossiblePOS:  make(map[string][]chartparse.Symbol),
		PartsOfSpeech:        make(POSSet, len(doc.POSWithPossibleWords)),
		ScannedRules:         make(map[chartparse.Symbol]*grammar.Rule, len(doc.POSWithPossibleWords)),
	}
	for posStr, words := range doc.POSWithPossibleWords {
		pos := chartparse.Symbol(posStr)
		v.POSWithPossibleWords[pos] = words
		v.PartsOfSpeech[pos] = struct{}{}
		rule, err := grammar.NewRule(pos, grammar.T(string(chartparse.Wildcard)))
		if err != nil {
			return nil, err
		}
		v.ScannedRules[pos] = rule
		for _, w := range words {
			w = strings.ToLower(w)
			if !containsPOS(v.WordWithPossiblePOS[w], pos) {
				v.WordWithPossiblePOS[w] = append(v.WordWithPossiblePOS[w], pos)
			}
		}
	}
	tracer().Debugf("vocab: loaded %d parts of speech, %d surface forms",
		len(v.PartsOfSpeech), len(v.WordWithPossiblePOS))
	return v, nil
}

func containsPOS(list []chartparse.Symbol, pos chartparse.Symbol) bool {
	for _, p := range list {
		if p == pos {
			return true
		}
	}
	return false
}

// POSFor returns the parts of speech a lowercase surface token may realize.
func (v *Vocabulary) POSFor(token string) []chartparse.Symbol {
	return v.WordWithPossiblePOS[strings.ToLower(token)]
}
