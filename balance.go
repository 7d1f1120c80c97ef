package accounts

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

// BalanceNode is one node of a balance tree: the same path hierarchy as a
// category tree, but over point-in-time account balances instead of
// transaction flows. After a build, Balance at a non-leaf node equals its own
// directly-assigned balance plus the sum of all children's balances, computed
// bottom-up exactly once.
type BalanceNode struct {
	Name     string
	Balance  decimal.Decimal
	children map[string]*BalanceNode
	Acct     *Account // set on the terminal node of an account's path
}

// Children iterates over the node's children in sorted-by-name order.
func (n *BalanceNode) Children() iter.Seq[*BalanceNode] {
	return func(yield func(*BalanceNode) bool) {
		names := slices.Collect(maps.Keys(n.children))
		slices.Sort(names)
		for _, name := range names {
			if !yield(n.children[name]) {
				return
			}
		}
	}
}

// NumChildren returns the number of direct children.
func (n *BalanceNode) NumChildren() int { return len(n.children) }

// Get walks the delimited path from this node, or returns nil.
func (n *BalanceNode) Get(name string) *BalanceNode {
	path, err := ParseCategory(name)
	if err != nil {
		return nil
	}
	node := n
	for _, segment := range path {
		node = node.children[segment]
		if node == nil {
			return nil
		}
	}
	return node
}

func (n *BalanceNode) child(name string) *BalanceNode {
	if n.children == nil {
		n.children = make(map[string]*BalanceNode)
	}
	if c, ok := n.children[name]; ok {
		return c
	}
	c := &BalanceNode{Name: name}
	n.children[name] = c
	return c
}

// rollup recomputes every node's balance bottom-up: own assigned balance plus
// the rolled-up balances of all children.
func (n *BalanceNode) rollup() decimal.Decimal {
	sum := n.Balance
	for _, c := range n.children {
		sum = sum.Add(c.rollup())
	}
	n.Balance = sum
	return sum
}

// BalanceForAccountOnDate returns the account's running balance as of the end
// of the given day. It finds the first line dated strictly after d and
// returns the previous line's balance; 0 when the very first line is already
// after d; the last line's balance when d is beyond all recorded activity.
func BalanceForAccountOnDate(d date.Date, acct *Account) decimal.Decimal {
	prev := decimal.Zero
	for _, tx := range acct.Lines {
		if tx.Date.After(d) {
			return prev
		}
		prev = tx.Balance
	}
	return prev
}

// AccountBalance is one tracked account with its balance as of a sheet date.
type AccountBalance struct {
	Acct    *Account
	Balance decimal.Decimal
}

// NewBalanceTree builds a balance tree from one entry per tracked account.
// Each account's name splits into a path exactly like a category string; the
// balance attaches at the path's terminal node. Two accounts resolving to the
// same terminal node is a structural error. After insertion every node's
// balance is rolled up from its children.
func NewBalanceTree(balances []AccountBalance) (*BalanceNode, error) {
	root := &BalanceNode{Name: RootName, children: make(map[string]*BalanceNode)}
	var errs []error
	for _, ab := range balances {
		path, err := ParseCategory(ab.Acct.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("account %q: %w", ab.Acct.Name, err))
			continue
		}
		node := root
		for _, segment := range path {
			node = node.child(segment)
		}
		if node.Acct != nil {
			errs = append(errs, structuralf(ab.Acct.Name, 0,
				"account path collides with account %q", node.Acct.Name))
			continue
		}
		node.Acct = ab.Acct
		node.Balance = ab.Balance
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	root.rollup()
	return root, nil
}

// BalanceSheet is one point-in-time balance tree.
type BalanceSheet struct {
	Name string
	Type LedgerType
	Date date.Date
	Tree *BalanceNode
}

// AnnualBalanceSheet bundles the balance sheets of one year: the year-end
// sheet, an optional as-of sheet, and optional quarter-end sheets. A quarter
// sheet that coincides with the year-end sheet is the same object.
type AnnualBalanceSheet struct {
	Type     LedgerType
	Year     int
	YearEnd  *BalanceSheet
	AsOf     *BalanceSheet
	Quarters []*BalanceSheet
}

// BalanceSheetRequest configures NewAnnualBalanceSheet.
type BalanceSheetRequest struct {
	Type     LedgerType
	Year     int       // default: current year
	AsOf     date.Date // zero: no as-of sheet
	Quarters bool      // include a sheet per quarter end
}

// NewBalanceSheet builds one sheet over all accounts of the requested view,
// with each account's balance computed as of the given date.
func (l *Ledger) NewBalanceSheet(name string, t LedgerType, on date.Date) (*BalanceSheet, error) {
	accounts := l.AccountsIn(t)
	balances := make([]AccountBalance, 0, len(accounts))
	for _, acct := range accounts {
		balances = append(balances, AccountBalance{
			Acct:    acct,
			Balance: BalanceForAccountOnDate(on, acct),
		})
	}
	tree, err := NewBalanceTree(balances)
	if err != nil {
		return nil, fmt.Errorf("balance sheet %q: %w", name, err)
	}
	return &BalanceSheet{Name: name, Type: t, Date: on, Tree: tree}, nil
}

// NewAnnualBalanceSheet bundles the requested sheets for one year.
func (l *Ledger) NewAnnualBalanceSheet(req BalanceSheetRequest) (*AnnualBalanceSheet, error) {
	year := req.Year
	if year == 0 {
		year = date.Today().Year()
	}

	yearEndDate := date.YearEnd(year)
	yearEnd, err := l.NewBalanceSheet(fmt.Sprintf("%d year-end", year), req.Type, yearEndDate)
	if err != nil {
		return nil, err
	}
	annual := &AnnualBalanceSheet{Type: req.Type, Year: year, YearEnd: yearEnd}

	if !req.AsOf.IsZero() {
		if req.AsOf == yearEndDate {
			annual.AsOf = yearEnd
		} else {
			asOf, err := l.NewBalanceSheet(fmt.Sprintf("as of %s", req.AsOf), req.Type, req.AsOf)
			if err != nil {
				return nil, err
			}
			annual.AsOf = asOf
		}
	}

	if req.Quarters {
		for q := 1; q <= 4; q++ {
			end := date.QuarterEnd(year, q)
			if end == yearEndDate {
				// The Q4 sheet is the year-end sheet, not a recomputation.
				annual.Quarters = append(annual.Quarters, yearEnd)
				continue
			}
			sheet, err := l.NewBalanceSheet(fmt.Sprintf("%d Q%d", year, q), req.Type, end)
			if err != nil {
				return nil, err
			}
			annual.Quarters = append(annual.Quarters, sheet)
		}
	}
	return annual, nil
}
