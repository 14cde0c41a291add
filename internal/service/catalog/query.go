package catalog

import (
	"sort"
	"strings"

	"storefront/internal/domain"
)

// Sort modes accepted by Apply. Anything else keeps the store order.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortDiscount  = "discount"
)

// Query bundles the filter and sort parameters for one catalog lookup.
// Nil price bounds impose no constraint; set bounds are inclusive.
type Query struct {
	Search   string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

// Apply runs the search, price-range and sort stages over products and
// returns the result as a new slice. The input is never modified, so the
// same query against the same snapshot always yields the same output.
func Apply(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, q.Sort)
	return out
}

func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// sortProducts orders in place. Stable sorts keep the upstream order for ties.
func sortProducts(products []domain.Product, mode string) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return discountPercent(products[i]) > discountPercent(products[j])
		})
	}
}

// discountPercent treats a zero original price as no discount instead of
// dividing by zero.
func discountPercent(p domain.Product) float64 {
	if p.OriginalPrice == 0 {
		return 0
	}
	return float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100
}
