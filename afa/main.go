// Command afa runs farm accounting reports over a directory of ledger files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/aultfarms/accounts/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell's completion
	// hook it prints candidates and exits.
	completion().Complete("afa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	typePredictor := predict.Set{"mkt", "tax"}
	report := func(extra map[string]complete.Predictor) *complete.Command {
		flags := map[string]complete.Predictor{
			"type": typePredictor,
			"year": predict.Something,
		}
		for name, p := range extra {
			flags[name] = p
		}
		return &complete.Command{Flags: flags}
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir":    predict.Dirs("*"),
			"settings-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"profit-loss": report(nil),
			"balance": report(map[string]complete.Predictor{
				"asof":     predict.Something,
				"quarters": predict.Nothing,
			}),
			"ten99":      {Flags: map[string]complete.Predictor{"year": predict.Something}},
			"categories": {Flags: map[string]complete.Predictor{"type": typePredictor}},
			"topic":      {Args: predict.Set{"categories", "ledger", "profit-loss", "balance", "ten99", "readme"}},
			"assist":     {},
		},
	}
}
