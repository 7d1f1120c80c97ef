package accounts

import (
	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

// epsilon is the floor below which a node total reports exactly zero, so
// downstream formatting never produces "-0.00".
var epsilon = decimal.New(1, -2) // 0.01

// TxType restricts an aggregation to one side of the ledger.
type TxType int

const (
	// AllTx sums every amount regardless of sign.
	AllTx TxType = iota
	// CreditTx sums only non-negative amounts (inflows).
	CreditTx
	// DebitTx sums only non-positive amounts (outflows).
	DebitTx
)

// AmountOptions filters an aggregation. The zero value applies no filter.
type AmountOptions struct {
	Start, End date.Date   // simple date bounds, zero = unbounded
	Range      *date.Range // explicit inclusive interval, preferred over Start/End when set
	Type       TxType
	Only       string // prune every subtree that neither contains nor lies under this name
	Exclude    string // prune the whole subtree rooted at a node with this name
}

// Amount recursively sums the transactions of a node and all its descendants,
// applying the given filters at every node visited.
//
// Per-node policy, in order: an Exclude match returns 0 without recursing; an
// Only mismatch (the node neither contains Only in its own subtree nor lies
// under an ancestor named Only) returns 0; otherwise the node's own filtered
// transactions plus the recursive sum over children. Exclude is checked
// before Only when both are set; the interaction of overlapping names is
// unconfirmed upstream and deliberately left in this order.
//
// A final node total with absolute value below 0.01 reports exactly 0.
func Amount(n *CategoryNode, opts AmountOptions) decimal.Decimal {
	if opts.Exclude != "" && n.Name == opts.Exclude {
		return decimal.Zero
	}
	if opts.Only != "" && !n.Contains(opts.Only) && !n.Under(opts.Only) {
		return decimal.Zero
	}

	var sum decimal.Decimal
	for _, tx := range n.Transactions {
		if opts.Type == CreditTx && tx.Amount.IsNegative() {
			continue
		}
		if opts.Type == DebitTx && tx.Amount.IsPositive() {
			continue
		}
		if !dateAccepted(tx.Date, opts) {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	for c := range n.Children() {
		sum = sum.Add(Amount(c, opts))
	}

	if sum.Abs().LessThan(epsilon) {
		return decimal.Zero
	}
	return sum
}

// Credit sums only the non-negative amounts; the result is non-negative.
func Credit(n *CategoryNode, opts AmountOptions) decimal.Decimal {
	opts.Type = CreditTx
	return Amount(n, opts)
}

// Debit sums only the non-positive amounts; the result is non-positive
// (the sum of negative amounts, not negated).
func Debit(n *CategoryNode, opts AmountOptions) decimal.Decimal {
	opts.Type = DebitTx
	return Amount(n, opts)
}

func dateAccepted(d date.Date, opts AmountOptions) bool {
	if opts.Range != nil {
		return opts.Range.Contains(d)
	}
	if !opts.Start.IsZero() && d.Before(opts.Start) {
		return false
	}
	if !opts.End.IsZero() && d.After(opts.End) {
		return false
	}
	return true
}
