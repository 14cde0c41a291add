package product

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists and fetches catalog products.
type Repository interface {
	// List returns products in insertion order. An empty category returns
	// the full collection; a non-empty one matches exactly.
	List(ctx context.Context, category string) ([]domain.Product, error)
	// Upsert inserts or updates a product keyed by name and reports whether
	// a new row was created.
	Upsert(ctx context.Context, p domain.Product) (bool, error)
}
