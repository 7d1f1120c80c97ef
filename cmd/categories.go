package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/aultfarms/accounts"
	"github.com/google/subcommands"
)

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	typ string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list every category used in the ledger" }
func (*categoriesCmd) Usage() string {
	return `afa categories [-type <mkt|tax>]

  Lists every category path observed in the selected view, with the number of
  lines recorded directly under it. Useful to spot misspelled categories.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", accounts.Tax.String(), "Ledger view to report on (mkt, tax)")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tree, err := accounts.Categorize(ledger.Lines(t))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error categorizing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	index := make(map[string]struct{})
	tree.CollectNames(index, accounts.NamesOptions{ExcludeRoot: true})
	names := slices.Sorted(maps.Keys(index))

	var b strings.Builder
	fmt.Fprintf(&b, "# Categories (%s)\n\n", t)
	fmt.Fprintln(&b, "| Category | Lines |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, name := range names {
		node := tree.Get(name)
		fmt.Fprintf(&b, "| %s | %d |\n", name, len(node.Transactions))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
