package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/aultfarms/accounts"
)

// BalanceSheetMarkdown renders one point-in-time balance sheet as a
// depth-indented table.
func BalanceSheetMarkdown(sheet *accounts.BalanceSheet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balance Sheet: %s\n\n", sheet.Name)
	fmt.Fprintf(&b, "%s view, as of %s.\n\n", sheet.Type, sheet.Date)
	writeBalanceTable(&b, sheet)
	return b.String()
}

// AnnualBalanceSheetMarkdown renders the bundle of one year's sheets. A
// quarter sheet that is the year-end sheet is rendered once, under its
// year-end title.
func AnnualBalanceSheetMarkdown(annual *accounts.AnnualBalanceSheet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d %s Balance Sheets\n\n", annual.Year, strings.ToUpper(annual.Type.String()))

	if annual.AsOf != nil && annual.AsOf != annual.YearEnd {
		fmt.Fprintf(&b, "## %s\n\n", annual.AsOf.Name)
		writeBalanceTable(&b, annual.AsOf)
	}
	for _, sheet := range annual.Quarters {
		if sheet == annual.YearEnd {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sheet.Name)
		writeBalanceTable(&b, sheet)
	}
	fmt.Fprintf(&b, "## %s\n\n", annual.YearEnd.Name)
	writeBalanceTable(&b, annual.YearEnd)

	return b.String()
}

func writeBalanceTable(w io.Writer, sheet *accounts.BalanceSheet) {
	fmt.Fprintln(w, "| Account | Balance |")
	fmt.Fprintln(w, "|:---|---:|")
	writeBalanceRows(w, sheet.Tree, 0)
	fmt.Fprintf(w, "| **Total** | **%s** |\n\n", accounts.USD(sheet.Tree.Balance).SignedString())
}

func writeBalanceRows(w io.Writer, node *accounts.BalanceNode, depth int) {
	for c := range node.Children() {
		fmt.Fprintf(w, "| %s%s | %s |\n", indent(depth), c.Name, accounts.USD(c.Balance).SignedString())
		writeBalanceRows(w, c, depth+1)
	}
}
