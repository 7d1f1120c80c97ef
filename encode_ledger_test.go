package accounts

import (
	"strings"
	"testing"
)

func TestDecodeAccount(t *testing.T) {
	src := `{"account": {"name": "loan-tractor", "scope": "tax"}}
{"date": "2020-01-10", "amount": 1000, "category": "START", "who": "bank"}
{"date": "2020-03-01", "amount": -200, "category": "loan-principal", "who": "bank", "note": "spring payment"}
{"date": "2020-02-01", "amount": -100.50, "category": "loan-interest", "who": "bank"}
`
	acct, err := DecodeAccount("ignored", strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeAccount() error = %v", err)
	}

	if acct.Name != "loan-tractor" {
		t.Errorf("name = %q, want %q (header wins over filename)", acct.Name, "loan-tractor")
	}
	if acct.Scope != TaxOnly {
		t.Errorf("scope = %v, want tax", acct.Scope)
	}
	if len(acct.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(acct.Lines))
	}

	// Lines are sorted by date and carry running balances.
	wantBalances := []float64{1000, 899.50, 699.50}
	for i, want := range wantBalances {
		if !eq(acct.Lines[i].Balance, dec(want)) {
			t.Errorf("line %d balance = %v, want %v", i, acct.Lines[i].Balance, want)
		}
	}
	if !acct.Lines[0].IsStart {
		t.Error("START category line should be an opening-balance marker")
	}
	if acct.Lines[1].IsStart || acct.Lines[2].IsStart {
		t.Error("ordinary lines must not be opening-balance markers")
	}
	// Lineno points at the physical source line, for error reporting.
	if acct.Lines[0].Lineno != 2 {
		t.Errorf("first line lineno = %d, want 2", acct.Lines[0].Lineno)
	}
	if acct.Lines[1].Acct != "loan-tractor" {
		t.Errorf("line acct = %q", acct.Lines[1].Acct)
	}
}

func TestDecodeAccountNoHeader(t *testing.T) {
	src := `{"date": "2020-01-10", "amount": 10, "category": "fuel", "who": "station"}
`
	acct, err := DecodeAccount("checking", strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeAccount() error = %v", err)
	}
	if acct.Name != "checking" {
		t.Errorf("name = %q, want filename-derived %q", acct.Name, "checking")
	}
	if acct.Scope != Both {
		t.Errorf("scope = %v, want both", acct.Scope)
	}
}

func TestDecodeAccountAccumulatesErrors(t *testing.T) {
	src := `{"date": "2020-01-10", "amount": 10, "category": "fuel", "who": "station"}
{"date": "not-a-date", "amount": 10, "category": "fuel", "who": "station"}
{"date": "2020-01-12", "amount": 10, "category": "", "who": "station"}
`
	_, err := DecodeAccount("checking", strings.NewReader(src))
	if err == nil {
		t.Fatal("DecodeAccount() with bad lines should fail")
	}
	if !IsStructural(err) {
		t.Errorf("error should be structural, got %v", err)
	}
	// One pass reports every bad line with its position.
	msg := err.Error()
	for _, want := range []string{"line 2", "line 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestDecodeTen99Settings(t *testing.T) {
	src := `{
  "valueRanges": [
    {"range": "People!A1:D",
     "values": [
       ["name", "taxid", "address", "othernames"],
       ["John Deere Credit", "11-111", "1 Deere Ln", "Deere Credit, Inc.; JD Credit"],
       ["Smith Trucking", "22-222", "", ""]
     ]},
    {"range": "'Categories'!A1:B",
     "values": [
       ["name", "alwaysreport"],
       ["loan-interest", "TRUE"],
       ["repairs", ""]
     ]}
  ]
}`
	settings, err := DecodeTen99Settings(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeTen99Settings() error = %v", err)
	}

	if len(settings.People) != 2 {
		t.Fatalf("got %d people, want 2", len(settings.People))
	}
	deere := settings.People[0]
	if deere.Name != "John Deere Credit" || deere.TaxID != "11-111" {
		t.Errorf("person = %+v", deere)
	}
	if len(deere.OtherNames) != 2 || deere.OtherNames[1] != "JD Credit" {
		t.Errorf("othernames = %v, want two entries split on ';'", deere.OtherNames)
	}

	if len(settings.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(settings.Categories))
	}
	if !settings.Categories[0].AlwaysReport {
		t.Error("loan-interest should be alwaysReport")
	}
	if settings.Categories[1].AlwaysReport {
		t.Error("repairs should not be alwaysReport")
	}
}

func TestDecodeTen99SettingsMissingSheet(t *testing.T) {
	src := `{"valueRanges": [
  {"range": "People!A1:D", "values": [["name"], ["Smith Trucking"]]}
]}`
	_, err := DecodeTen99Settings(strings.NewReader(src))
	if err == nil {
		t.Fatal("DecodeTen99Settings() without a categories sheet should fail")
	}
}
