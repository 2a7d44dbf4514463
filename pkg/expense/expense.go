package expense

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date form used at every boundary of the ledger.
const DateFormat = "2006-01-02"

var ErrExpenseNotFound = errors.New("expense not found")

// ValidationError reports a malformed input field on a ledger operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Expense is a single recorded spending event. It references exactly one
// category, assigned at creation time; updates never reassign it.
type Expense struct {
	ID         int
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	CategoryID int
}
