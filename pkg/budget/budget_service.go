package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/event_bus"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// SpentProvider reports the total spent in a "YYYY-MM" month. The expense
// ledger provides the production implementation.
type SpentProvider func(ctx context.Context, month string) (decimal.Decimal, error)

type BudgetService interface {
	// Set stores the monthly limit, overwriting any previous one for the month.
	Set(ctx context.Context, month string, limit string) (Budget, error)
	// MonthStatus reports the spent total and how it compares to the limit.
	// An empty month defaults to the current month. Pure read, no side effects.
	MonthStatus(ctx context.Context, month string) (MonthStatus, error)
}

type BudgetServiceImpl struct {
	repo  BudgetRepo
	spent SpentProvider
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewBudgetService(repo BudgetRepo, spent SpentProvider, clock utils.Clock, bus *event_bus.EventBus) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo, spent: spent, clock: clock, bus: bus}
}

func (s *BudgetServiceImpl) Set(ctx context.Context, month string, limit string) (Budget, error) {
	if _, err := time.Parse(MonthFormat, month); err != nil {
		return Budget{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	parsedLimit, err := decimal.NewFromString(limit)
	if err != nil {
		return Budget{}, fmt.Errorf("%w: %q", ErrInvalidLimit, limit)
	}

	budget, err := s.repo.Upsert(ctx, month, parsedLimit)
	if err != nil {
		return Budget{}, err
	}

	if s.bus != nil {
		err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.BudgetSetEvent, event_bus.BudgetSet{
			Month: budget.Month,
			Limit: budget.Limit,
		}))
		if err != nil {
			log.Warnf("failed to publish budget set event: %v", err)
		}
	}

	return budget, nil
}

func (s *BudgetServiceImpl) MonthStatus(ctx context.Context, month string) (MonthStatus, error) {
	if month == "" {
		month = s.clock.Now().Format(MonthFormat)
	}
	if _, err := time.Parse(MonthFormat, month); err != nil {
		return MonthStatus{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	spent, err := s.spent(ctx, month)
	if err != nil {
		return MonthStatus{}, fmt.Errorf("failed to compute spent total: %w", err)
	}

	budget, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return MonthStatus{}, err
	}
	if budget == nil {
		return MonthStatus{Month: month, Spent: spent, Status: StatusNoBudget}, nil
	}

	return MonthStatus{
		Month:  month,
		Spent:  spent,
		Limit:  budget.Limit,
		Status: budget.StatusFor(spent),
	}, nil
}
