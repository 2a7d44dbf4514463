package category

import (
	"context"
	"sort"
)

type StubRepository struct {
	nextId int
	data   map[string]Category
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Category{}}
}

func (s *StubRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	if category, ok := s.data[name]; ok {
		return &category, nil
	}
	return nil, nil
}

func (s *StubRepository) Insert(ctx context.Context, name string) (int, bool, error) {
	if _, ok := s.data[name]; ok {
		return 0, false, nil
	}
	s.nextId++
	s.data[name] = Category{ID: s.nextId, Name: name}
	return s.nextId, true, nil
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, 0, len(s.data))
	for _, category := range s.data {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]Category{}
}
