package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/earleygram/chartparse/grammar"
	"github.com/earleygram/chartparse/parser"
	"github.com/earleygram/chartparse/vocab"
)

// runRepl loads a grammar and vocabulary once and then repeatedly reads a
// sentence per line, parsing it and printing the result, until EOF.
func runRepl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	grammarPath, vocabPath, traceArg := commonFlags(fs)
	posOnly := fs.Bool("pos-only", false, "print bare part-of-speech yields instead of bracketed trees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tracer().SetTraceLevel(traceLevel(*traceArg))

	g, v, err := loadGrammarAndVocab(*grammarPath, *vocabPath)
	if err != nil {
		return err
	}

	rl, err := readline.New("chartctl> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("enter a sentence to parse it against the loaded grammar, quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := evalLine(g, v, line, *posOnly); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	fmt.Fprintln(os.Stderr, "bye")
	return nil
}

func evalLine(g *grammar.Grammar, v *vocab.Vocabulary, line string, posOnly bool) error {
	toks, err := vocab.Tokenize(line)
	if err != nil {
		return err
	}
	p, err := parser.New(g, v, toks, 0)
	if err != nil {
		return err
	}
	accepted, indicator := p.ParseSentence()
	pterm.Info.Printfln("accepted=%v derivation_indicator=%d", accepted, indicator)
	if !accepted {
		return nil
	}
	pterm.Info.Printfln("derivations=%d", p.CountDerivations())
	for _, s := range p.FormattedStrings(0, posOnly) {
		fmt.Println(s)
	}
	return nil
}
