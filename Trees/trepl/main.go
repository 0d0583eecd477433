package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'trepl'
func tracer() tracing.Trace {
	return tracing.Select("trepl")
}

// main starts an interactive CLI ("T.REPL") to play with named tree sets of
// integers. Every line is one command, see `help`.
func main() {
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracing.Select("treeset").SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to TREPL")
	//
	repl, err := readline.New("trepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(os.Stdout)
	tracer().Infof("Quit with <ctrl>D")
	if err := intp.LoadInitFile(*initf); err != nil {
		tracer().Errorf("%v", err)
	}
	intp.REPL(repl)
}

// We use pterm for moderately fancy output.
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

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
