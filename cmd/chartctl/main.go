/*
Command chartctl drives the Earley chart parser from the command line:
parsing a sentence against a grammar and vocabulary, generating sentences
from a grammar alone, or dropping into an interactive REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func tracer() tracing.Trace {
	return tracing.Select("chartparse.chartctl")
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	pterm.Info.Println("chartctl — Earley chart parser")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "parse":
		err = runParse(args)
	case "generate":
		err = runGenerate(args)
	case "repl":
		err = runRepl(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chartctl <parse|generate|repl> [flags]")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func commonFlags(fs *flag.FlagSet) (grammarPath, vocabPath, trace *string) {
	grammarPath = fs.String("grammar", "", "path to the grammar text file")
	vocabPath = fs.String("vocab", "", "path to the vocabulary JSON file")
	trace = fs.String("trace", "Info", "trace level [Debug|Info|Error]")
	return
}
