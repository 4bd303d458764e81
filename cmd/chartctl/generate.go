package main

import (
	"flag"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/earleygram/chartparse/parser"
)

// runGenerate drives generator mode: no input sentence, just a grammar and a
// bound on sentence length.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	grammarPath, vocabPath, traceArg := commonFlags(fs)
	maxWords := fs.Int("max-words", 8, "maximum sentence length to generate")
	posOnly := fs.Bool("pos-only", false, "print bare part-of-speech yields instead of bracketed trees")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tracer().SetTraceLevel(traceLevel(*traceArg))

	g, v, err := loadGrammarAndVocab(*grammarPath, *vocabPath)
	if err != nil {
		return err
	}

	p, err := parser.NewGenerator(g, v, *maxWords)
	if err != nil {
		return err
	}
	accepted, indicator, err := p.GenerateSentence()
	if err == parser.ErrTooManyItems {
		return fmt.Errorf("generator overflow: grammar produces too many derivations up to %d words", *maxWords)
	}
	if err != nil {
		return err
	}
	pterm.Info.Printfln("accepted=%v derivation_indicator=%d", accepted, indicator)
	for length := 0; length <= *maxWords; length++ {
		for _, s := range p.GeneratedStrings(length, *posOnly) {
			fmt.Println(s)
		}
	}
	return nil
}
