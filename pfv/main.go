package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hyejin/folio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion; it exits the process when invoked by
// the shell completion hook and returns otherwise.
func completion() {
	account := predict.Set{"Main", "US", "ISA", "Pension", "IRP"}
	pfv := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir": predict.Dirs("*"),
			"currency":   predict.Set{"KRW", "USD", "EUR"},
			"offline":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"summary": {Flags: map[string]complete.Predictor{"a": account}},
			"holding": {Flags: map[string]complete.Predictor{"a": account}},
			"weight":  {Flags: map[string]complete.Predictor{"by": predict.Set{"type", "account"}}},
			"gains": {Flags: map[string]complete.Predictor{
				"a":              account,
				"year":           predict.Nothing,
				"lag":            predict.Nothing,
				"trade-currency": predict.Set{"USD"},
			}},
			"limits": {Flags: map[string]complete.Predictor{
				"year": predict.Nothing,
				"us":   account,
			}},
		},
	}
	pfv.Complete("pfv")
}
