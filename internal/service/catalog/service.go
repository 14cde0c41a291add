package catalog

import (
	"context"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

// Service exposes catalog reads and seeding on top of the product store.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the store snapshot, optionally scoped to one category.
func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.List(ctx, category)
}

// Query loads the scoped snapshot and runs the filter/sort pipeline over it.
func (s *Service) Query(ctx context.Context, category string, q Query) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return Apply(products, q), nil
}

// Seed upserts products into the store and reports how many were newly
// inserted. Re-running with the same set inserts nothing.
func (s *Service) Seed(ctx context.Context, products []domain.Product) (int, error) {
	inserted := 0
	for _, p := range products {
		isNew, err := s.repo.Upsert(ctx, p)
		if err != nil {
			return inserted, err
		}
		if isNew {
			inserted++
		}
	}
	return inserted, nil
}
