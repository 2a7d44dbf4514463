package category

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetOrCreate returns the category with the given name, creating it first
	// when absent. It is idempotent per name and safe against concurrent
	// callers creating the same name.
	GetOrCreate(ctx context.Context, name string) (Category, error)
	GetAll(ctx context.Context) ([]Category, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetOrCreate(ctx context.Context, name string) (Category, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Category{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	id, inserted, err := s.repo.Insert(ctx, name)
	if err != nil {
		return Category{}, err
	}
	if inserted {
		return Category{ID: id, Name: name}, nil
	}

	// Lost the race: a concurrent caller inserted the name between the
	// lookup and the insert. The winner's row must be readable now.
	log.Debugf("category %q created concurrently, re-reading", name)
	winner, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return Category{}, err
	}
	if winner == nil {
		return Category{}, ErrCreationConflict
	}
	return *winner, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}
