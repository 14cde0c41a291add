package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"storefront/internal/domain"
)

// memoryProductRepo is a lightweight in-memory product store for tests.
type memoryProductRepo struct {
	products []domain.Product
	listErr  error
}

func (r *memoryProductRepo) List(_ context.Context, category string) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryProductRepo) Upsert(_ context.Context, p domain.Product) (bool, error) {
	for i, existing := range r.products {
		if existing.Name == p.Name {
			r.products[i] = p
			return false, nil
		}
	}
	r.products = append(r.products, p)
	return true, nil
}

func TestQuery_ScopesToCategoryThenFilters(t *testing.T) {
	repo := &memoryProductRepo{products: []domain.Product{
		{Name: "Men's Tee", Category: "men", Price: 599},
		{Name: "Men's Jacket", Category: "men", Price: 1499},
		{Name: "Women's Dress", Category: "women", Price: 1299},
	}}
	svc := New(repo)

	got, err := svc.Query(context.Background(), "men", Query{MaxPrice: int64Ptr(1000)})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Men's Tee" {
		t.Fatalf("unexpected result %v", names(got))
	}
}

func TestQuery_StoreErrorSurfaces(t *testing.T) {
	boom := errors.New("store unavailable")
	svc := New(&memoryProductRepo{listErr: boom})

	if _, err := svc.Query(context.Background(), "", Query{}); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestList_ReturnsSnapshot(t *testing.T) {
	repo := &memoryProductRepo{products: []domain.Product{
		{Name: "a", Category: "men"},
		{Name: "b", Category: "kids"},
	}}
	svc := New(repo)

	got, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"a", "b"}) {
		t.Fatalf("unexpected snapshot %v", names(got))
	}
}

func TestSeed_CountsOnlyNewInserts(t *testing.T) {
	repo := &memoryProductRepo{}
	svc := New(repo)
	ctx := context.Background()

	batch := []domain.Product{
		{Name: "a", Price: 100, OriginalPrice: 200},
		{Name: "b", Price: 300, OriginalPrice: 400},
	}

	inserted, err := svc.Seed(ctx, batch)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}

	inserted, err = svc.Seed(ctx, batch)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected idempotent re-seed, got %d inserted", inserted)
	}
	if len(repo.products) != 2 {
		t.Fatalf("expected 2 products in store, got %d", len(repo.products))
	}
}
