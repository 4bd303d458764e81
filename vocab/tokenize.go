package vocab

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var wordLexer *lexmachine.Lexer

const tokWord = 0

func init() {
	lex := lexmachine.NewLexer()
	lex.Add([]byte(`([^\s])+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokWord, string(m.Bytes), m), nil
	})
	lex.Add([]byte(`\s+`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, nil
	})
	if err := lex.Compile(); err != nil {
		panic(fmt.Errorf("vocab: failed to compile sentence lexer: %w", err))
	}
	wordLexer = lex
}

// Tokenize splits raw sentence text into whitespace-delimited surface
// tokens, for the CLI and for ad hoc sentence input. It performs no
// normalization beyond trimming; callers that need lowercase lookups
// should use POSFor, which lowercases internally.
func Tokenize(sentence string) ([]string, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, nil
	}
	scanner, err := wordLexer.Scanner([]byte(sentence))
	if err != nil {
		return nil, err
	}
	var words []string
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
			return nil, err
		}
		if tok == nil {
			continue
		}
		words = append(words, string(tok.(*lexmachine.Token).Lexeme))
	}
	return words, nil
}
