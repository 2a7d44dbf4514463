package report

import "context"

type Service interface {
	CategoryReport(ctx context.Context) ([]CategoryTotal, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) CategoryReport(ctx context.Context) ([]CategoryTotal, error) {
	return s.repo.CategoryTotals(ctx)
}
