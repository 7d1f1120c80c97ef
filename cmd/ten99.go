package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aultfarms/accounts/renderer"
	"github.com/google/subcommands"
)

// ten99Cmd holds the flags for the 'ten99' subcommand.
type ten99Cmd struct {
	year int
}

func (*ten99Cmd) Name() string     { return "ten99" }
func (*ten99Cmd) Synopsis() string { return "annual 1099 totals per payee" }
func (*ten99Cmd) Usage() string {
	return `afa ten99 [-year <year>] [-settings-file <file>]

  Totals tax-view payments per configured payee over the reportable
  categories, and flags payees missing from the settings file.
`
}

func (c *ten99Cmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Report year, defaults to the current year")
}

func (c *ten99Cmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := DecodeSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := ledger.NewTen99(settings, c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building 1099 report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Ten99Markdown(result))
	return subcommands.ExitSuccess
}
