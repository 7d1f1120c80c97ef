package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aultfarms/accounts"
	"github.com/aultfarms/accounts/date"
	"github.com/aultfarms/accounts/renderer"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	typ      string
	year     int
	asOf     string
	quarters bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "annual balance sheets" }
func (*balanceCmd) Usage() string {
	return `afa balance [-type <mkt|tax>] [-year <year>] [-asof <date>] [-quarters]

  Builds the balance sheets for one year: always the year-end sheet, plus an
  as-of sheet and quarter-end sheets on request.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", accounts.Mkt.String(), "Ledger view to report on (mkt, tax)")
	f.IntVar(&c.year, "year", 0, "Report year, defaults to the current year")
	f.StringVar(&c.asOf, "asof", "", "Extra snapshot date. See 'afa topic balance' for supported formats.")
	f.BoolVar(&c.quarters, "quarters", false, "Include a sheet per quarter end")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := parseType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	req := accounts.BalanceSheetRequest{Type: t, Year: c.year, Quarters: c.quarters}
	if c.asOf != "" {
		d, err := date.Parse(c.asOf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing as-of date: %v\n", err)
			return subcommands.ExitUsageError
		}
		req.AsOf = d
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	annual, err := ledger.NewAnnualBalanceSheet(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building balance sheets: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnnualBalanceSheetMarkdown(annual))
	return subcommands.ExitSuccess
}
