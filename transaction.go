package accounts

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

// AccountTx is one immutable ledger line. Positive amounts are credits
// (inflows), negative amounts are debits (outflows).
type AccountTx struct {
	Date     date.Date
	Amount   decimal.Decimal
	Category Category
	Who      string // payee/payer free-text name
	Note     string

	// Bookkeeping, not used by the aggregation logic itself.
	Acct    string          // source account name
	Lineno  int             // 1-based line in the source account file
	IsStart bool            // opening balance marker line
	Balance decimal.Decimal // running balance within the source account
}

// Clone returns a deep, independent copy of the transaction. Reports clone
// their line slices before any per-report mutation so that filtering a time
// range never corrupts the shared ledger.
func (tx AccountTx) Clone() AccountTx {
	tx.Category = tx.Category.Clone()
	return tx
}

// CloneLines deep-clones a slice of ledger lines.
func CloneLines(lines []AccountTx) []AccountTx {
	out := make([]AccountTx, len(lines))
	for i, tx := range lines {
		out[i] = tx.Clone()
	}
	return out
}

// LedgerType selects one of the two combined ledger views.
type LedgerType int

const (
	// Mkt is the market view, valuing livestock and grain at market prices.
	Mkt LedgerType = iota
	// Tax is the tax view, following the tax basis of each line.
	Tax
)

func (t LedgerType) String() string {
	switch t {
	case Mkt:
		return "mkt"
	case Tax:
		return "tax"
	default:
		return "unknown"
	}
}

// ParseLedgerType parses a string into a LedgerType.
func ParseLedgerType(s string) (LedgerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mkt", "market":
		return Mkt, nil
	case "tax":
		return Tax, nil
	default:
		return Mkt, fmt.Errorf("unknown ledger type: %q", s)
	}
}

// AccountScope declares which combined views a source account feeds.
type AccountScope int

const (
	Both AccountScope = iota
	MktOnly
	TaxOnly
)

func (s AccountScope) String() string {
	switch s {
	case Both:
		return "both"
	case MktOnly:
		return "mkt"
	case TaxOnly:
		return "tax"
	default:
		return "unknown"
	}
}

// ParseAccountScope parses a string into an AccountScope. Empty defaults to both.
func ParseAccountScope(s string) (AccountScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return Both, nil
	case "mkt", "market":
		return MktOnly, nil
	case "tax":
		return TaxOnly, nil
	default:
		return Both, fmt.Errorf("unknown account scope: %q", s)
	}
}

// Account is one source account's lines in chronological order, each line
// carrying its running balance.
type Account struct {
	Name  string
	Scope AccountScope
	Lines []AccountTx
}

// Ledger is the fully loaded operational ledger: the source accounts plus the
// combined mkt and tax views. The combined views hold independent copies of
// the account lines, date-sorted, so report construction never touches the
// per-account slices.
type Ledger struct {
	Accounts []*Account
	Mkt      []AccountTx
	Tax      []AccountTx
}

// NewLedger assembles the combined views from the given source accounts.
func NewLedger(accounts ...*Account) *Ledger {
	l := &Ledger{Accounts: accounts}
	for _, acct := range accounts {
		if acct.Scope == Both || acct.Scope == MktOnly {
			l.Mkt = append(l.Mkt, CloneLines(acct.Lines)...)
		}
		if acct.Scope == Both || acct.Scope == TaxOnly {
			l.Tax = append(l.Tax, CloneLines(acct.Lines)...)
		}
	}
	stableSortByDate(l.Mkt)
	stableSortByDate(l.Tax)
	return l
}

// Lines returns the combined view for the given ledger type.
func (l *Ledger) Lines(t LedgerType) []AccountTx {
	if t == Tax {
		return l.Tax
	}
	return l.Mkt
}

// Account returns the source account with the given name, or nil.
func (l *Ledger) Account(name string) *Account {
	for _, acct := range l.Accounts {
		if acct.Name == name {
			return acct
		}
	}
	return nil
}

// AccountsIn returns the source accounts feeding the given ledger view.
func (l *Ledger) AccountsIn(t LedgerType) []*Account {
	var out []*Account
	for _, acct := range l.Accounts {
		switch acct.Scope {
		case Both:
			out = append(out, acct)
		case MktOnly:
			if t == Mkt {
				out = append(out, acct)
			}
		case TaxOnly:
			if t == Tax {
				out = append(out, acct)
			}
		}
	}
	return out
}

// stableSortByDate sorts lines by date. The sort is stable, lines on the same
// day keep their original relative order.
func stableSortByDate(lines []AccountTx) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})
}

// years returns the distinct years of all dated lines, sorted.
func years(lines []AccountTx) []int {
	seen := make(map[int]struct{})
	for _, tx := range lines {
		if tx.Date.IsZero() {
			continue
		}
		seen[tx.Date.Year()] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	slices.Sort(out)
	return out
}

// hasYear reports whether any dated line falls in the given year.
func hasYear(lines []AccountTx, year int) bool {
	for _, tx := range lines {
		if !tx.Date.IsZero() && tx.Date.Year() == year {
			return true
		}
	}
	return false
}
