// Package accounts turns a farm's flat, categorized ledger into hierarchical
// financial reports. It is designed to be pure and local-first: every entry
// point is a synchronous computation over already-loaded, deep-cloned data.
//
// The core functionalities include:
//   - Category Trees: mirroring every observed category path (segments joined
//     by '-') as a tree of nodes, with transactions attached at their path's
//     terminal node.
//   - Amount Aggregation: recursive summation over a tree with date-range,
//     debit/credit, and subtree inclusion/exclusion filters.
//   - Profit & Loss: cumulative year-to-date reports, one category tree per
//     reporting quarter.
//   - Balance Sheets: point-in-time account balance trees with additive
//     roll-up from children to parents, bundled per year.
//   - 1099 Summaries: per-person annual totals over reportable categories,
//     with a validation report of payees missing from the settings.
//   - Data Loading: decoding account ledgers from human-readable JSONL files
//     and 1099 settings from spreadsheet-export JSON documents.
//
// This package serves as the foundational logic for the `afa` command-line
// tool; rendering and document I/O live in sibling packages.
package accounts
