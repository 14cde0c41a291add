package importer

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain"
)

type memoryWriter struct {
	products []domain.Product
}

func (w *memoryWriter) Upsert(_ context.Context, p domain.Product) (bool, error) {
	for i, existing := range w.products {
		if existing.Name == p.Name {
			w.products[i] = p
			return false, nil
		}
	}
	w.products = append(w.products, p)
	return true, nil
}

const sampleCSV = `name,price,originalPrice,category,image,description,rating,reviews,inStock
Men's Casual T-Shirt,599,999,men,https://example.com/tee.jpg,Comfortable cotton t-shirt,4.5,12,true
Kids' Hoodie,499,799,kids,,Warm and cozy hoodie,,,
`

func TestRun_ImportsRows(t *testing.T) {
	w := &memoryWriter{}
	imp := NewCSVImporter(strings.NewReader(sampleCSV), w)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 imported, got %d", count)
	}

	first := w.products[0]
	if first.Name != "Men's Casual T-Shirt" || first.Price != 599 || first.OriginalPrice != 999 || first.Reviews != 12 {
		t.Fatalf("unexpected first product %+v", first)
	}

	// Optional columns fall back to schema defaults.
	second := w.products[1]
	if second.Rating != 4.5 || second.Reviews != 0 || !second.InStock {
		t.Fatalf("unexpected defaults %+v", second)
	}
}

func TestRun_MissingNameColumn(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("price,category\n100,men\n"), &memoryWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestRun_InvalidPrice(t *testing.T) {
	csv := "name,price,originalPrice,category\nBad Row,free,999,men\n"
	imp := NewCSVImporter(strings.NewReader(csv), &memoryWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for non-numeric price")
	}
}
