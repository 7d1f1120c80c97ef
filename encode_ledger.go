package accounts

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aultfarms/accounts/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Account files are JSONL, one ledger line per line, human-readable and
// git-friendly. An optional first header line declares account metadata:
//
//	{"account": {"name": "loan-tractor", "scope": "both"}}
//	{"date": "2020-01-01", "amount": -1500, "category": "loan-principal", "who": "Deere Credit"}
//
// The filename (without extension) names the account when no header does.
// Opening balances are marked with "start": true or the literal START
// category.

const accountFilesGlob = "*.jsonl"

// startCategory is the conventional opening-balance marker category.
const startCategory = "START"

// jheader is the optional account metadata line.
type jheader struct {
	Account *struct {
		Name  string `json:"name"`
		Scope string `json:"scope"`
	} `json:"account"`
}

// jline is one ledger line as persisted.
type jline struct {
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Who      string          `json:"who"`
	Note     string          `json:"note,omitempty"`
	Start    bool            `json:"start,omitempty"`
}

// DecodeAccount decodes one account's ledger lines from a stream of JSONL
// data. Structural problems are reported per line and accumulated, so a
// single pass surfaces every bad line at once.
func DecodeAccount(name string, r io.Reader) (*Account, error) {
	acct := &Account{Name: name}
	scanner := bufio.NewScanner(r)

	var errs []error
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		if lineno == 1 {
			var h jheader
			if err := json.Unmarshal([]byte(raw), &h); err == nil && h.Account != nil {
				if h.Account.Name != "" {
					acct.Name = h.Account.Name
				}
				scope, err := ParseAccountScope(h.Account.Scope)
				if err != nil {
					errs = append(errs, structuralf(acct.Name, lineno, "%v", err))
					continue
				}
				acct.Scope = scope
				continue
			}
		}

		var jl jline
		if err := json.Unmarshal([]byte(raw), &jl); err != nil {
			errs = append(errs, structuralf(acct.Name, lineno, "malformed line: %v", err))
			continue
		}

		tx := AccountTx{
			Amount: jl.Amount,
			Who:    jl.Who,
			Note:   jl.Note,
			Acct:   acct.Name,
			Lineno: lineno,
		}

		if jl.Date != "" {
			d, err := date.Parse(jl.Date)
			if err != nil {
				errs = append(errs, structuralf(acct.Name, lineno, "%v", err))
				continue
			}
			tx.Date = d
		}

		category, err := ParseCategory(jl.Category)
		if err != nil {
			errs = append(errs, structuralf(acct.Name, lineno, "%v", err))
			continue
		}
		tx.Category = category
		tx.IsStart = jl.Start || category.String() == startCategory

		acct.Lines = append(acct.Lines, tx)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("account %q: %w", acct.Name, err))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	stableSortByDate(acct.Lines)
	computeRunningBalances(acct)
	return acct, nil
}

// computeRunningBalances assigns each line its running balance: the sum of
// all amounts up to and including the line, in chronological order.
func computeRunningBalances(acct *Account) {
	var balance decimal.Decimal
	for i := range acct.Lines {
		balance = balance.Add(acct.Lines[i].Amount)
		acct.Lines[i].Balance = balance
	}
}

// DecodeLedgerDir loads every account file in a directory and assembles the
// combined ledger views.
func DecodeLedgerDir(dir string) (*Ledger, error) {
	filenames, err := filepath.Glob(filepath.Join(dir, accountFilesGlob))
	if err != nil {
		return nil, fmt.Errorf("could not list account files in %q: %w", dir, err)
	}
	if len(filenames) == 0 {
		return nil, fmt.Errorf("no account files (%s) in %q", accountFilesGlob, dir)
	}

	var accounts []*Account
	var errs []error
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			errs = append(errs, fmt.Errorf("could not open account file %q: %w", filename, err))
			continue
		}
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		acct, err := DecodeAccount(name, f)
		f.Close()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		accounts = append(accounts, acct)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return NewLedger(accounts...), nil
}
