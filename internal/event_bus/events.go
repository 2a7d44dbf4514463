package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ExpenseCreatedEvent EventType = "expense.created"
	BudgetSetEvent      EventType = "budget.set"
)

// ExpenseCreated is published after an expense row has been committed.
type ExpenseCreated struct {
	ExpenseID  int
	Title      string
	Amount     decimal.Decimal
	Date       time.Time
	CategoryID int
}

// BudgetSet is published after a monthly limit has been inserted or updated.
type BudgetSet struct {
	Month string
	Limit decimal.Decimal
}
