package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/earleygram/chartparse/grammar"
	"github.com/earleygram/chartparse/parser"
	"github.com/earleygram/chartparse/vocab"
)

// runParse loads a grammar and vocabulary, tokenizes the remaining
// command-line arguments as the sentence, and reports acceptance, the
// derivation count, and (unless -pos-only is given) every bracketed parse.
func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
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
	sentence := strings.Join(fs.Args(), " ")
	toks, err := vocab.Tokenize(sentence)
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
	for _, s := range p.FormattedStrings(0, *posOnly) {
		fmt.Println(s)
	}
	return nil
}

func loadGrammarAndVocab(grammarPath, vocabPath string) (*grammar.Grammar, *vocab.Vocabulary, error) {
	if grammarPath == "" || vocabPath == "" {
		return nil, nil, fmt.Errorf("both -grammar and -vocab are required")
	}
	gf, err := os.Open(grammarPath)
	if err != nil {
		return nil, nil, err
	}
	defer gf.Close()
	g, err := grammar.ReadFile(gf)
	if err != nil {
		return nil, nil, err
	}
	vf, err := os.Open(vocabPath)
	if err != nil {
		return nil, nil, err
	}
	defer vf.Close()
	v, err := vocab.Load(vf)
	if err != nil {
		return nil, nil, err
	}
	return g, v, nil
}
