package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/event_bus"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ExpenseInput carries the raw fields of a new expense. Amount and Date are
// kept as strings so the ledger owns their validation.
type ExpenseInput struct {
	Title        string
	Amount       string
	Date         string
	CategoryName string
}

type Service interface {
	Create(ctx context.Context, input ExpenseInput) (Expense, error)
	Update(ctx context.Context, id int, title string, amount string) (Expense, error)
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (Expense, error)
	GetAll(ctx context.Context) ([]Expense, error)
	// SearchByDate returns all expenses recorded on exactly the given
	// "YYYY-MM-DD" date. An empty result is an empty slice, not an error.
	SearchByDate(ctx context.Context, date string) ([]Expense, error)
	SpentInMonth(ctx context.Context, month string) (decimal.Decimal, error)
}

type ServiceImpl struct {
	repo       Repository
	categories category.Service
	bus        *event_bus.EventBus
}

func NewService(repo Repository, categories category.Service, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, categories: categories, bus: bus}
}

func (s *ServiceImpl) Create(ctx context.Context, input ExpenseInput) (Expense, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return Expense{}, err
	}
	date, err := time.Parse(DateFormat, input.Date)
	if err != nil {
		return Expense{}, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", input.Date)}
	}

	// Resolving the category before the insert keeps the reference valid:
	// the row either existed already or was just created.
	resolvedCategory, err := s.categories.GetOrCreate(ctx, input.CategoryName)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to resolve category: %w", err)
	}

	expense := Expense{
		Title:      input.Title,
		Amount:     amount,
		Date:       date,
		CategoryID: resolvedCategory.ID,
	}
	id, err := s.repo.Store(ctx, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.ID = id

	s.publishCreated(ctx, expense)

	return expense, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id int, title string, amount string) (Expense, error) {
	parsedAmount, err := parseAmount(amount)
	if err != nil {
		return Expense{}, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	if existing == nil {
		return Expense{}, ErrExpenseNotFound
	}

	updated, err := s.repo.Update(ctx, id, title, parsedAmount)
	if err != nil {
		return Expense{}, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%d)", id)
		return Expense{}, ErrExpenseNotFound
	}

	existing.Title = title
	existing.Amount = parsedAmount
	return *existing, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%d)", id)
		return ErrExpenseNotFound
	}
	return nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id int) (Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	if expense == nil {
		return Expense{}, ErrExpenseNotFound
	}
	return *expense, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) SearchByDate(ctx context.Context, date string) ([]Expense, error) {
	parsedDate, err := time.Parse(DateFormat, date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a YYYY-MM-DD date", date)}
	}
	return s.repo.FindByDate(ctx, parsedDate)
}

func (s *ServiceImpl) SpentInMonth(ctx context.Context, month string) (decimal.Decimal, error) {
	return s.repo.SumForMonth(ctx, month)
}

func (s *ServiceImpl) publishCreated(ctx context.Context, expense Expense) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.ExpenseCreatedEvent, event_bus.ExpenseCreated{
		ExpenseID:  expense.ID,
		Title:      expense.Title,
		Amount:     expense.Amount,
		Date:       expense.Date,
		CategoryID: expense.CategoryID,
	}))
	if err != nil {
		// The expense row is already committed; subscriber failures must not
		// fail the operation.
		log.Warnf("failed to publish expense created event: %v", err)
	}
}

func parseAmount(amount string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a decimal number", amount)}
	}
	return parsed, nil
}
