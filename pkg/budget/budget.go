package budget

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MonthFormat is the "YYYY-MM" month key form used at every boundary.
const MonthFormat = "2006-01"

var (
	ErrInvalidMonth = errors.New("month must be in YYYY-MM form")
	ErrInvalidLimit = errors.New("limit must be a decimal number")
)

type Status string

const (
	StatusNoBudget     Status = "NO_BUDGET"
	StatusWithinBudget Status = "WITHIN_BUDGET"
	StatusExceeded     Status = "EXCEEDED"
)

// Budget is a spending limit for one calendar month. At most one row exists
// per month; setting a limit for an existing month overwrites it in place.
type Budget struct {
	ID    int
	Month string
	Limit decimal.Decimal
}

// StatusFor compares month-to-date spending against the limit. Spending
// exactly at the limit is within budget; only strictly greater exceeds it.
func (b Budget) StatusFor(spent decimal.Decimal) Status {
	if spent.GreaterThan(b.Limit) {
		return StatusExceeded
	}
	return StatusWithinBudget
}

// MonthStatus is the result of a budget check: the spent total is always
// reported, even when no budget row exists for the month.
type MonthStatus struct {
	Month  string
	Spent  decimal.Decimal
	Limit  decimal.Decimal
	Status Status
}
