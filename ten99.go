package accounts

import (
	"slices"
	"strings"

	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

// ten99Threshold is the IRS reporting threshold: totals at or above 600 in
// absolute value must be reported.
var ten99Threshold = decimal.NewFromInt(600)

// Ten99Person is one person from the 1099 settings, with the alternate names
// their payments may be recorded under.
type Ten99Person struct {
	Name       string
	TaxID      string
	Address    string
	OtherNames []string
}

// aliases returns the person's name plus all other names.
func (p Ten99Person) aliases() []string {
	return append([]string{p.Name}, p.OtherNames...)
}

// Ten99Category is one reportable category from the 1099 settings.
type Ten99Category struct {
	Name string
	// AlwaysReport flags a required category: any sufficiently large payee in
	// it must appear in the settings people, else it is a missing-person
	// finding.
	AlwaysReport bool
}

// Ten99Settings is the typed result of the external settings import: the
// people to report on and the categories that count as 1099-reportable.
type Ten99Settings struct {
	People     []Ten99Person
	Categories []Ten99Category
}

// Ten99CategorySummary is one person's total within one reportable category.
type Ten99CategorySummary struct {
	Name   string
	Amount decimal.Decimal
	Lines  []AccountTx
}

// Ten99Entry is one person's annual 1099 summary. Total sums the kept
// category summaries, not all of the person's transactions: only
// 1099-reportable categories count.
type Ten99Entry struct {
	Person     Ten99Person
	Lines      []AccountTx
	Categories []Ten99CategorySummary
	Total      decimal.Decimal
}

// Ten99Result is the outcome of one 1099 aggregation: the entries at or above
// the reporting threshold, plus the soft findings of payees missing from the
// settings. Findings are result data, never errors.
type Ten99Result struct {
	Year    int
	Entries []Ten99Entry
	// MissingPeople maps a required category name to the payees who crossed
	// the reporting threshold in it but match no settings person.
	MissingPeople map[string][]string
}

// normalizeWho reduces a payee name to its fuzzy-match form: uppercase, with
// spaces, commas, periods and the literal substrings LLC and INC stripped.
func normalizeWho(who string) string {
	s := strings.ToUpper(who)
	for _, cut := range []string{" ", ",", "."} {
		s = strings.ReplaceAll(s, cut, "")
	}
	s = strings.ReplaceAll(s, "LLC", "")
	s = strings.ReplaceAll(s, "INC", "")
	return s
}

// NewTen99 computes the per-person annual 1099 summaries over the tax ledger.
// It fails with a validation error when year has no tax transactions.
func (l *Ledger) NewTen99(settings Ten99Settings, year int) (*Ten99Result, error) {
	if year == 0 {
		year = date.Today().Year()
	}
	taxLines := l.Lines(Tax)
	if !hasYear(taxLines, year) {
		return nil, validationf("year %d not found in tax ledger years %v", year, years(taxLines))
	}

	// Filter the tax ledger to the calendar year, excluding opening-balance
	// markers, deep-cloned.
	lines := make([]AccountTx, 0, len(taxLines))
	for _, tx := range taxLines {
		if tx.IsStart || tx.Date.IsZero() || tx.Date.Year() != year {
			continue
		}
		lines = append(lines, tx.Clone())
	}

	// Pre-parse category names; a category name is matched as a path prefix
	// (hyphen-boundary semantics).
	catPaths := make([]Category, len(settings.Categories))
	for i, cat := range settings.Categories {
		path, err := ParseCategory(cat.Name)
		if err != nil {
			return nil, err
		}
		catPaths[i] = path
	}

	result := &Ten99Result{Year: year, MissingPeople: make(map[string][]string)}

	for _, person := range settings.People {
		norms := make([]string, 0, len(person.OtherNames)+1)
		for _, alias := range person.aliases() {
			norms = append(norms, normalizeWho(alias))
		}

		var personLines []AccountTx
		for _, tx := range lines {
			if slices.Contains(norms, normalizeWho(tx.Who)) {
				personLines = append(personLines, tx)
			}
		}

		entry := Ten99Entry{Person: person, Lines: personLines}
		for i, cat := range settings.Categories {
			var catLines []AccountTx
			var sum decimal.Decimal
			for _, tx := range personLines {
				if tx.Category.HasPrefix(catPaths[i]) {
					catLines = append(catLines, tx)
					sum = sum.Add(tx.Amount)
				}
			}
			if sum.IsZero() {
				continue
			}
			entry.Categories = append(entry.Categories, Ten99CategorySummary{
				Name:   cat.Name,
				Amount: sum,
				Lines:  catLines,
			})
			entry.Total = entry.Total.Add(sum)
		}

		if entry.Total.Abs().GreaterThanOrEqual(ten99Threshold) {
			result.Entries = append(result.Entries, entry)
		}
	}

	// Cross-validation: required categories must not have large unmatched
	// payees.
	known := make(map[string]struct{})
	for _, person := range settings.People {
		for _, alias := range person.aliases() {
			known[normalizeWho(alias)] = struct{}{}
		}
	}
	for i, cat := range settings.Categories {
		if !cat.AlwaysReport {
			continue
		}
		// Distinct payees in this category across the whole filtered year,
		// keyed by normalized form; the original spelling is what gets
		// reported.
		payees := make(map[string]string)
		var order []string
		for _, tx := range lines {
			if !tx.Category.HasPrefix(catPaths[i]) {
				continue
			}
			norm := normalizeWho(tx.Who)
			if _, ok := payees[norm]; !ok {
				payees[norm] = tx.Who
				order = append(order, norm)
			}
		}
		for _, norm := range order {
			if _, ok := known[norm]; ok {
				continue
			}
			var total decimal.Decimal
			for _, tx := range lines {
				if normalizeWho(tx.Who) == norm && tx.Category.HasPrefix(catPaths[i]) {
					total = total.Add(tx.Amount)
				}
			}
			if total.Abs().GreaterThanOrEqual(ten99Threshold) {
				result.MissingPeople[cat.Name] = append(result.MissingPeople[cat.Name], payees[norm])
			}
		}
	}

	return result, nil
}
