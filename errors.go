package gagyebu

import (
	"errors"
	"fmt"
)

// Validation errors are recoverable and field-local: the caller re-prompts
// for the same field and nothing is written.
var (
	// ErrInvalidDate reports a date or month string that is malformed, not a
	// real calendar date, or outside [MinYear, MaxYear].
	ErrInvalidDate = errors.New("invalid date")
	// ErrFutureDate reports an entry date after the injected "today".
	ErrFutureDate = errors.New("date is in the future")

	// ErrNotInteger reports an amount that is not a plain decimal integer,
	// including strings with a leading zero.
	ErrNotInteger = errors.New("amount is not an integer")
	// ErrNonPositive reports a zero amount.
	ErrNonPositive = errors.New("amount must be positive")
	// ErrTooLarge reports an amount above MaxAmount.
	ErrTooLarge = errors.New("amount is too large")

	// ErrUnknownCategory reports a token matching no standard name or synonym.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownPayment reports a token matching no payment method.
	ErrUnknownPayment = errors.New("unknown payment method")
)

// Registry errors are recoverable and operation-local.
var (
	// ErrDuplicateName reports a category name or synonym already present
	// anywhere in the registry, as a name or as a synonym.
	ErrDuplicateName = errors.New("name already exists in the registry")
	// ErrDuplicateSynonym reports a synonym repeated within one submission.
	ErrDuplicateSynonym = errors.New("duplicate synonym")
	// ErrInvalidChars reports a name or synonym outside the Hangul-syllable
	// and ASCII-alphanumeric character set.
	ErrInvalidChars = errors.New("name contains invalid characters")
	// ErrCategoryNotFound reports an operation on an absent category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrIncomeCategory reports an attempt to delete the reserved income category.
	ErrIncomeCategory = errors.New("the income category cannot be deleted")
	// ErrCategoryFloor reports a deletion that would leave fewer than
	// MinCategories categories.
	ErrCategoryFloor = errors.New("cannot delete below the category floor")
)

// Query errors.
var (
	// ErrInvalidSearchTerm reports a digit-leading search term that is
	// neither YYYY-MM-DD nor YYYY-MM.
	ErrInvalidSearchTerm = errors.New("invalid search term")
	// ErrUnrecognizedTerm reports a search term that resolves to no date,
	// category, or payment method. An empty result with a nil error means
	// the term was recognized but matched no rows.
	ErrUnrecognizedTerm = errors.New("unrecognized search term")
)

// Edit session errors.
var (
	// ErrSessionClosed reports a mutation on a committed or cancelled session.
	ErrSessionClosed = errors.New("edit session is closed")
	// ErrNoSuchRecord reports an out-of-range record ordinal.
	ErrNoSuchRecord = errors.New("no such record")
)

// InsolvencyError reports an operation that would make total assets
// negative. The operation is rejected, the prior state retained, and
// Balance carries the unchanged total asset so the user can be informed.
type InsolvencyError struct {
	Balance int64 // total asset before the rejected operation
}

func (e *InsolvencyError) Error() string {
	return fmt.Sprintf("operation would make expenses exceed income (current total asset: %d)", e.Balance)
}

// BudgetError reports a budget amount that does not strictly exceed the
// expenses already recorded for the month.
type BudgetError struct {
	Month Month
	Spent int64 // expense total already recorded for the month
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("budget for %s must exceed the %d already spent", e.Month, e.Spent)
}

// CorruptError is fatal: a persisted line does not match the file format
// that upstream integrity checking guarantees. No repair is attempted; the
// session terminates.
type CorruptError struct {
	File string // file name, empty when decoding a bare stream
	Line int    // 1-based line number
	Err  error
}

func (e *CorruptError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("corrupt line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt file %s line %d: %v", e.File, e.Line, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }
