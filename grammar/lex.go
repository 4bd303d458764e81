package grammar

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds produced by the rule-line lexer. Grounded on the adapter
// shape of lr/scanner/lexmach: a lexmachine.Lexer compiled once and reused
// across every line of the grammar file.
const (
	tokArrow int = iota
	tokQuoted
	tokSymbol
)

type ruleToken struct {
	kind   int
	lexeme string
}

var ruleLexer *lexmachine.Lexer

func init() {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`->`), makeRuleToken(tokArrow))
	// A single-quoted literal: '...'; may contain spaces so that
	// multi-word surface forms (e.g. 'San Francisco') tokenize as one
	// literal rather than several bare symbols.
	lex.Add([]byte(`'[^']*'`), makeRuleToken(tokQuoted))
	lex.Add([]byte(`([^\s'])+`), makeRuleToken(tokSymbol))
	lex.Add([]byte(`( |\t)+`), skip)
	if err := lex.Compile(); err != nil {
		panic(fmt.Errorf("grammar: failed to compile rule-line lexer: %w", err))
	}
	ruleLexer = lex
}

// makeRuleToken wraps a match into a *lexmachine.Token, the shape expected
// by lexmachine.Scanner.Next; actions that instead want the match skipped
// (whitespace) return (nil, nil), matching lr/scanner/lexmach's Skip.
func makeRuleToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// tokenizeRuleLine splits a single grammar-rule line (comments and the
// optional leading index already stripped) into arrow/quoted/symbol
// tokens.
func tokenizeRuleLine(line string) ([]ruleToken, error) {
	scanner, err := ruleLexer.Scanner([]byte(line))
	if err != nil {
		return nil, fmt.Errorf("grammar: cannot scan line %q: %w", line, err)
	}
	var tokens []ruleToken
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				scanner.TC = ui.FailTC
				continue
			}
			return nil, fmt.Errorf("grammar: lex error in line %q: %w", line, err)
		}
		if tok == nil {
			continue
		}
		lt := tok.(*lexmachine.Token)
		tokens = append(tokens, ruleToken{kind: lt.Type, lexeme: string(lt.Lexeme)})
	}
	return tokens, nil
}
