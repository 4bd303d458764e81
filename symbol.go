package chartparse

import "fmt"

// Symbol is an opaque interned grammar symbol: a nonterminal category, a
// part of speech, or a quoted terminal literal. We do not define any
// constants for application-specific categories here, as it is up to the
// grammar source to name them.
type Symbol string

// Distinguished symbols with fixed meaning to the parser. START must never
// appear on the right-hand side of any rule; Gamma is the synthetic symbol
// of the rule that seeds the chart (Gamma -> START); Epsilon denotes the
// right-hand side of an empty production.
const (
	START   Symbol = "START"
	Gamma   Symbol = "Gamma"
	Epsilon Symbol = "ε"
	// Wildcard marks the rhs literal of a process-wide scanned rule
	// (vocab.ScannedRules): the canonical "POS -> 'token'" shape shared by
	// every pre-scanned item for that part of speech, so that Item
	// equality — keyed on the rule pointer — treats all scans of the same
	// POS as derived from one rule, regardless of which surface word was
	// actually matched.
	Wildcard Symbol = "*"
)

func (s Symbol) String() string {
	return string(s)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, the chart tracks which input positions a
// symbol covers. A span denotes a start column index and the column index
// just behind the end, i.e. a half-open interval [From, To).
type Span [2]int

// From returns the start index of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end index of a span (exclusive).
func (s Span) To() int {
	return s[1]
}

// Len returns the length (To - From) of a span.
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
