package expense

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type StubRepository struct {
	nextId int
	data   map[int]Expense
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Expense{}}
}

func (s *StubRepository) Store(ctx context.Context, expense Expense) (int, error) {
	s.nextId++
	expense.ID = s.nextId
	s.data[expense.ID] = expense
	return expense.ID, nil
}

func (s *StubRepository) FindByID(ctx context.Context, id int) (*Expense, error) {
	if expense, ok := s.data[id]; ok {
		return &expense, nil
	}
	return nil, nil
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Expense, error) {
	expenses := make([]Expense, 0, len(s.data))
	for _, expense := range s.data {
		expenses = append(expenses, expense)
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses, nil
}

func (s *StubRepository) FindByDate(ctx context.Context, date time.Time) ([]Expense, error) {
	expenses := make([]Expense, 0)
	for _, expense := range s.data {
		if expense.Date.Equal(date) {
			expenses = append(expenses, expense)
		}
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses, nil
}

func (s *StubRepository) Update(ctx context.Context, id int, title string, amount decimal.Decimal) (bool, error) {
	expense, ok := s.data[id]
	if !ok {
		return false, nil
	}
	expense.Title = title
	expense.Amount = amount
	s.data[id] = expense
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) SumForMonth(ctx context.Context, month string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, expense := range s.data {
		if expense.Date.Format("2006-01") == month {
			sum = sum.Add(expense.Amount)
		}
	}
	return sum, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[int]Expense{}
}
