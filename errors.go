package accounts

import (
	"errors"
	"fmt"
)

// The engine distinguishes two fatal error kinds. Structural errors mark
// malformed input data and carry the offending line number and account name.
// Validation errors mark a request that cannot be satisfied (e.g. a year with
// no transactions) and are raised before any aggregation work begins.
// Soft findings (like 1099 missing payees) are never errors, they are
// returned as ordinary result data.
//
// Multiple failures accumulate with errors.Join; callers prepend context by
// wrapping with fmt.Errorf("...: %w", err) without losing the message chain.

// StructuralError reports malformed or inconsistent input data.
type StructuralError struct {
	Account string // source account name, if known
	Lineno  int    // 1-based line in the source account, 0 if not line-scoped
	Msg     string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Account != "" && e.Lineno > 0:
		return fmt.Sprintf("account %q: line %d: %s", e.Account, e.Lineno, e.Msg)
	case e.Account != "":
		return fmt.Sprintf("account %q: %s", e.Account, e.Msg)
	case e.Lineno > 0:
		return fmt.Sprintf("line %d: %s", e.Lineno, e.Msg)
	default:
		return e.Msg
	}
}

// structuralf builds a line- or account-scoped structural error.
func structuralf(account string, lineno int, format string, args ...any) error {
	return &StructuralError{Account: account, Lineno: lineno, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a request the ledger cannot satisfy.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// validationf builds a ValidationError.
func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsStructural reports whether any error in err's chain is a StructuralError.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// IsValidation reports whether any error in err's chain is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
