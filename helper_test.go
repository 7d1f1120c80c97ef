package accounts

import (
	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

// tx is a test helper building one ledger line from constants.
func tx(on string, amount float64, category, who string) AccountTx {
	return AccountTx{
		Date:     date.MustParse(on),
		Amount:   decimal.NewFromFloat(amount),
		Category: MustCategory(category),
		Who:      who,
	}
}

// dec is a test helper building a decimal from a float constant.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// eq reports decimal equality, keeping test assertions short.
func eq(a, b decimal.Decimal) bool { return a.Equal(b) }
