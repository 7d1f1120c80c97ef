package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aultfarms/accounts"
)

// Ten99Markdown renders the annual 1099 summaries plus the soft findings of
// payees missing from settings.
func Ten99Markdown(result *accounts.Ten99Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d 1099 Report\n\n", result.Year)

	if len(result.Entries) == 0 {
		fmt.Fprintln(&b, "No person reached the reporting threshold.")
	}
	for _, entry := range result.Entries {
		fmt.Fprintf(&b, "## %s\n\n", entry.Person.Name)
		if entry.Person.TaxID != "" {
			fmt.Fprintf(&b, "Tax ID %s", entry.Person.TaxID)
			if entry.Person.Address != "" {
				fmt.Fprintf(&b, ", %s", entry.Person.Address)
			}
			fmt.Fprintln(&b, ".")
			fmt.Fprintln(&b)
		}
		fmt.Fprintln(&b, "| Category | Amount | Lines |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, cat := range entry.Categories {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", cat.Name, accounts.USD(cat.Amount).SignedString(), len(cat.Lines))
		}
		fmt.Fprintf(&b, "| **Total** | **%s** | |\n\n", accounts.USD(entry.Total).SignedString())
	}

	ConditionalBlock(&b, func(w io.Writer) bool { return writeMissingPeople(w, result) })
	return b.String()
}

// writeMissingPeople reports payees of required categories who crossed the
// threshold but match nobody in settings. These are findings for the
// bookkeeper, not errors.
func writeMissingPeople(w io.Writer, result *accounts.Ten99Result) bool {
	if len(result.MissingPeople) == 0 {
		return false
	}
	fmt.Fprintln(w, "## Payees missing from settings")
	fmt.Fprintln(w)

	names := make([]string, 0, len(result.MissingPeople))
	for name := range result.MissingPeople {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, who := range result.MissingPeople[name] {
			fmt.Fprintf(w, "- %s: %s\n", name, who)
		}
	}
	fmt.Fprintln(w)
	return true
}
