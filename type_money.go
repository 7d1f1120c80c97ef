package accounts

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal value with a display currency. The ledger is
// single-currency; Money exists for rendering, all arithmetic stays on
// decimal.Decimal.
type Money struct {
	value decimal.Decimal
	cur   string
}

// USD wraps an amount in the ledger's currency.
func USD(v decimal.Decimal) Money { return Money{value: v, cur: money.USD} }

// currency returns a never-nil go-money currency for formatting.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency's symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString formats the value with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
