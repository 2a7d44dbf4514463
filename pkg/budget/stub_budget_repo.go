package budget

import (
	"context"

	"github.com/shopspring/decimal"
)

type StubBudgetRepo struct {
	nextId int
	data   map[string]Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]Budget{}}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, month string, limit decimal.Decimal) (Budget, error) {
	if existing, ok := s.data[month]; ok {
		existing.Limit = limit
		s.data[month] = existing
		return existing, nil
	}
	s.nextId++
	budget := Budget{ID: s.nextId, Month: month, Limit: limit}
	s.data[month] = budget
	return budget, nil
}

func (s *StubBudgetRepo) FindByMonth(ctx context.Context, month string) (*Budget, error) {
	if budget, ok := s.data[month]; ok {
		return &budget, nil
	}
	return nil, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[string]Budget{}
}
