package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aultfarms/accounts"
	"github.com/aultfarms/accounts/renderer"
	"github.com/google/subcommands"
)

// profitLossCmd holds the flags for the 'profit-loss' subcommand.
type profitLossCmd struct {
	typ  string
	year int
}

func (*profitLossCmd) Name() string     { return "profit-loss" }
func (*profitLossCmd) Synopsis() string { return "cumulative quarterly profit & loss report" }
func (*profitLossCmd) Usage() string {
	return `afa profit-loss [-type <mkt|tax>] [-year <year>]

  Builds the profit & loss report for one year: one category tree per
  cumulative quarter range, every range starting January 1.
`
}

func (c *profitLossCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", accounts.Tax.String(), "Ledger view to report on (mkt, tax)")
	f.IntVar(&c.year, "year", 0, "Report year, defaults to the current year")
}

func (c *profitLossCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	pl, err := ledger.NewProfitLoss(t, c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building profit & loss: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfitLossMarkdown(pl))
	return subcommands.ExitSuccess
}
