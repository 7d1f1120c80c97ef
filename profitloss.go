package accounts

import (
	"fmt"

	"github.com/aultfarms/accounts/date"
)

// ProfitLossRange is one cumulative reporting range of a profit & loss
// report. Every range starts on January 1 of the report year; only the end
// moves from quarter to quarter.
type ProfitLossRange struct {
	Year    int
	Name    string // "Q1" .. "Q4"
	YearEnd bool
	Range   date.Range
	Lines   []AccountTx // deep-cloned, filtered to the range
	Tree    *CategoryNode
}

// ProfitLoss is a full-year profit & loss report: one category tree per
// cumulative quarter range.
type ProfitLoss struct {
	Year   int
	Type   LedgerType
	Lines  []AccountTx
	Ranges []ProfitLossRange
	// Categories is the year-end range's tree. It aliases the same object,
	// deliberately: downstream mutators that annotate the year-end tree see
	// their changes through both fields. Never deep-copy it.
	Categories *CategoryNode
}

// NewProfitLoss builds the profit & loss report for one year of the selected
// ledger view. It fails with a validation error when the year does not appear
// among the transaction years of the view.
func (l *Ledger) NewProfitLoss(t LedgerType, year int) (*ProfitLoss, error) {
	if year == 0 {
		year = date.Today().Year()
	}
	lines := l.Lines(t)
	if !hasYear(lines, year) {
		return nil, validationf("year %d not found in %s ledger years %v", year, t, years(lines))
	}

	pl := &ProfitLoss{Year: year, Type: t, Lines: lines}
	for q := 1; q <= 4; q++ {
		r := date.YearToQuarter(year, q)
		ranged := filterToRange(lines, r)
		tree, err := Categorize(ranged)
		if err != nil {
			return nil, fmt.Errorf("%s %d Q%d: %w", t, year, q, err)
		}
		pr := ProfitLossRange{
			Year:    year,
			Name:    fmt.Sprintf("Q%d", q),
			YearEnd: q == 4,
			Range:   r,
			Lines:   ranged,
			Tree:    tree,
		}
		pl.Ranges = append(pl.Ranges, pr)
		if pr.YearEnd {
			pl.Categories = pr.Tree
		}
	}
	return pl, nil
}

// YearEndRange returns the year-end cumulative range of the report.
func (pl *ProfitLoss) YearEndRange() *ProfitLossRange {
	for i := range pl.Ranges {
		if pl.Ranges[i].YearEnd {
			return &pl.Ranges[i]
		}
	}
	return nil
}

// filterToRange keeps the dated, non-opening-balance lines falling within r,
// deep-cloned so later per-report mutation never corrupts the shared ledger.
func filterToRange(lines []AccountTx, r date.Range) []AccountTx {
	out := make([]AccountTx, 0, len(lines))
	for _, tx := range lines {
		if tx.IsStart || tx.Date.IsZero() || !r.Contains(tx.Date) {
			continue
		}
		out = append(out, tx.Clone())
	}
	return out
}
