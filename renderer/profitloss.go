package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aultfarms/accounts"
)

// ProfitLossMarkdown renders a profit & loss report: one column per
// cumulative quarter range, one row per category observed anywhere in the
// year.
func ProfitLossMarkdown(pl *accounts.ProfitLoss) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %d %s Profit & Loss\n\n", pl.Year, strings.ToUpper(pl.Type.String()))

	// The year-end tree holds the superset of every category in the year.
	index := make(map[string]struct{})
	pl.Categories.CollectNames(index, accounts.NamesOptions{ExcludeRoot: true})
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprint(&b, "| Category |")
	for _, r := range pl.Ranges {
		fmt.Fprintf(&b, " %s |", r.Name)
	}
	fmt.Fprint(&b, "\n|:---|")
	for range pl.Ranges {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for _, name := range names {
		fmt.Fprintf(&b, "| %s |", name)
		for _, r := range pl.Ranges {
			node := r.Tree.Get(name)
			if node == nil {
				fmt.Fprint(&b, " - |")
				continue
			}
			fmt.Fprintf(&b, " %s |", accounts.USD(accounts.Amount(node, accounts.AmountOptions{})).SignedString())
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprint(&b, "| **Net** |")
	for _, r := range pl.Ranges {
		fmt.Fprintf(&b, " **%s** |", accounts.USD(accounts.Amount(r.Tree, accounts.AmountOptions{})).SignedString())
	}
	fmt.Fprintln(&b)

	yearEnd := pl.YearEndRange()
	fmt.Fprintf(&b, "\nCredits %s, debits %s over %s.\n",
		accounts.USD(accounts.Credit(yearEnd.Tree, accounts.AmountOptions{})),
		accounts.USD(accounts.Debit(yearEnd.Tree, accounts.AmountOptions{})),
		yearEnd.Range,
	)

	return b.String()
}
