package report

import "context"

// StubRepository is an in-memory Repository implementation for tests.
type StubRepository struct {
	totals []CategoryTotal
	err    error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{totals: make([]CategoryTotal, 0)}
}

func (s *StubRepository) CategoryTotals(_ context.Context) ([]CategoryTotal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.totals, nil
}

func (s *StubRepository) SetTotals(totals []CategoryTotal) {
	s.totals = totals
}

func (s *StubRepository) SetError(err error) {
	s.err = err
}

func (s *StubRepository) Cleanup() {
	s.totals = make([]CategoryTotal, 0)
	s.err = nil
}
