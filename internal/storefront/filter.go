package storefront

import (
	"cmp"
	"slices"
	"strings"

	"phonestore/internal/domain"
)

// Sort modes understood by ApplyFilters. Anything else keeps catalog order.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// Filter is the shopper's current search selection.
type Filter struct {
	Keyword string
	Brand   string
	Sort    string
}

// ApplyFilters returns the products matching f, in the order f.Sort asks for.
// The catalog slice itself is left untouched.
func ApplyFilters(catalog []domain.Product, f Filter) []domain.Product {
	keyword := strings.ToLower(strings.TrimSpace(f.Keyword))

	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if !matchesKeyword(p, keyword) {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}
	return out
}

func matchesKeyword(p domain.Product, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Brand), keyword) ||
		strings.Contains(strings.ToLower(p.Description), keyword)
}

// Brands lists distinct brands in first-seen order.
func Brands(catalog []domain.Product) []string {
	seen := make(map[string]bool, len(catalog))
	var out []string
	for _, p := range catalog {
		if seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		out = append(out, p.Brand)
	}
	return out
}
