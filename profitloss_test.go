package accounts

import (
	"testing"

	"github.com/aultfarms/accounts/date"
)

func testLedger(lines ...AccountTx) *Ledger {
	acct := &Account{Name: "checking", Scope: Both, Lines: lines}
	return NewLedger(acct)
}

func TestNewProfitLossCumulativeRanges(t *testing.T) {
	ledger := testLedger(
		tx("2020-02-01", 100, "sales-grain-corn", "elevator"),
		tx("2020-07-01", 100, "sales-grain-beans", "elevator"),
	)

	pl, err := ledger.NewProfitLoss(Tax, 2020)
	if err != nil {
		t.Fatalf("NewProfitLoss() error = %v", err)
	}
	if len(pl.Ranges) != 4 {
		t.Fatalf("got %d ranges, want 4", len(pl.Ranges))
	}

	wantTotals := []float64{100, 100, 200, 200} // cumulative, not discrete
	for i, want := range wantTotals {
		r := pl.Ranges[i]
		if got := Amount(r.Tree, AmountOptions{}); !eq(got, dec(want)) {
			t.Errorf("range %s total = %v, want %v", r.Name, got, want)
		}
		if r.Range.From != pl.Ranges[0].Range.From {
			t.Errorf("range %s starts %v, want Jan 1", r.Name, r.Range.From)
		}
	}

	if !pl.Ranges[3].YearEnd {
		t.Error("Q4 range should be marked year-end")
	}
	for i := 0; i < 3; i++ {
		if pl.Ranges[i].YearEnd {
			t.Errorf("range %s wrongly marked year-end", pl.Ranges[i].Name)
		}
	}
}

func TestNewProfitLossCategoriesAliasesYearEnd(t *testing.T) {
	ledger := testLedger(tx("2020-02-01", 100, "sales-grain", "elevator"))
	pl, err := ledger.NewProfitLoss(Mkt, 2020)
	if err != nil {
		t.Fatalf("NewProfitLoss() error = %v", err)
	}
	// Same object, not a recomputation.
	if pl.Categories != pl.YearEndRange().Tree {
		t.Error("Categories must alias the year-end range's tree")
	}
}

func TestNewProfitLossYearValidation(t *testing.T) {
	ledger := testLedger(tx("2020-02-01", 100, "sales-grain", "elevator"))
	_, err := ledger.NewProfitLoss(Tax, 2019)
	if err == nil {
		t.Fatal("NewProfitLoss() with an absent year should fail")
	}
	if !IsValidation(err) {
		t.Errorf("error should be a validation error, got %v", err)
	}
}

func TestNewProfitLossSkipsOpeningBalanceAndUndated(t *testing.T) {
	start := tx("2020-01-01", 500, "START", "")
	start.IsStart = true
	undated := tx("2020-03-01", 40, "fuel", "station")
	undated.Date = date.Date{} // invalid date

	ledger := testLedger(
		start,
		undated,
		tx("2020-02-01", 100, "sales-grain", "elevator"),
	)
	pl, err := ledger.NewProfitLoss(Tax, 2020)
	if err != nil {
		t.Fatalf("NewProfitLoss() error = %v", err)
	}
	if got := Amount(pl.Categories, AmountOptions{}); !eq(got, dec(100)) {
		t.Errorf("year-end total = %v, want 100 (opening balance and undated lines excluded)", got)
	}
}

func TestNewProfitLossDeepClonesLines(t *testing.T) {
	ledger := testLedger(tx("2020-02-01", 100, "sales-grain", "elevator"))
	pl, err := ledger.NewProfitLoss(Tax, 2020)
	if err != nil {
		t.Fatalf("NewProfitLoss() error = %v", err)
	}

	// Mutating a report line's category must not corrupt the shared ledger,
	// nor another report built from an overlapping range.
	pl.Ranges[0].Lines[0].Category[0] = "mutated"
	if ledger.Tax[0].Category[0] != "sales" {
		t.Error("report mutation leaked into the ledger")
	}
	if pl.Ranges[1].Lines[0].Category[0] != "sales" {
		t.Error("report mutation leaked into an overlapping range")
	}
}
