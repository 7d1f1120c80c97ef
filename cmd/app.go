// Package cmd implements the CLI application to run farm accounting reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/aultfarms/accounts"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&profitLossCmd{},
	&balanceCmd{},
	&ten99Cmd{},
	&categoriesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerDir = flag.String("ledger-dir", ".", "Directory holding the account files (JSONL format)")
var settingsFile = flag.String("settings-file", "settings.json", "Path to the 1099 settings file (spreadsheet export, JSON)")

// DecodeLedger loads every account file from the app ledger directory.
func DecodeLedger() (*accounts.Ledger, error) {
	return accounts.DecodeLedgerDir(*ledgerDir)
}

// DecodeSettings loads the 1099 settings from the app settings file.
func DecodeSettings() (accounts.Ten99Settings, error) {
	f, err := os.Open(*settingsFile)
	if err != nil {
		return accounts.Ten99Settings{}, fmt.Errorf("opening settings file: %w", err)
	}
	defer f.Close()
	return accounts.DecodeTen99Settings(f)
}

// parseType resolves the common -type flag of the report commands.
func parseType(s string) (accounts.LedgerType, error) {
	t, err := accounts.ParseLedgerType(s)
	if err != nil {
		return t, fmt.Errorf("flag -type: %w", err)
	}
	return t, nil
}
