package storefront

import (
	"testing"

	"phonestore/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: "P1", Name: "Acme One", Brand: "Acme", Description: "Flagship camera", Price: 1000000, Rating: 4.5},
		{ID: "P2", Name: "Zeta Z", Brand: "Zeta", Description: "Pin trâu", Price: 500000, Rating: 4.8},
		{ID: "P3", Name: "Acme Lite", Brand: "Acme", Description: "Budget", Price: 500000, Rating: 4.1},
		{ID: "P4", Name: "Nova", Brand: "Nova", Description: "Gập CAMERA", Price: 2000000, Rating: 4.8},
	}
}

func TestApplyFilters_Sorting(t *testing.T) {
	two := []domain.Product{
		{ID: "P1", Brand: "Acme", Price: 1000000, Rating: 4.5},
		{ID: "P2", Brand: "Zeta", Price: 500000, Rating: 4.8},
	}
	assert.Equal(t, []string{"P2", "P1"}, ids(ApplyFilters(two, Filter{Sort: SortPriceAsc})))
	assert.Equal(t, []string{"P2", "P1"}, ids(ApplyFilters(two, Filter{Sort: SortRatingDesc})))
	assert.Equal(t, []string{"P1", "P2"}, ids(ApplyFilters(two, Filter{Sort: SortPriceDesc})))
	assert.Equal(t, []string{"P1", "P2"}, ids(ApplyFilters(two, Filter{})))
	assert.Equal(t, []string{"P1", "P2"}, ids(ApplyFilters(two, Filter{Sort: "newest"})))
}

func TestApplyFilters_StableOnTies(t *testing.T) {
	catalog := catalogFixture()
	assert.Equal(t, []string{"P2", "P3", "P1", "P4"}, ids(ApplyFilters(catalog, Filter{Sort: SortPriceAsc})))
	assert.Equal(t, []string{"P4", "P1", "P2", "P3"}, ids(ApplyFilters(catalog, Filter{Sort: SortPriceDesc})))
	assert.Equal(t, []string{"P2", "P4", "P1", "P3"}, ids(ApplyFilters(catalog, Filter{Sort: SortRatingDesc})))
}

func TestApplyFilters_Keyword(t *testing.T) {
	catalog := catalogFixture()
	assert.Equal(t, []string{"P1", "P4"}, ids(ApplyFilters(catalog, Filter{Keyword: "camera"})))
	assert.Equal(t, []string{"P1", "P3"}, ids(ApplyFilters(catalog, Filter{Keyword: "  ACME "})))
	assert.Equal(t, []string{"P2"}, ids(ApplyFilters(catalog, Filter{Keyword: "trâu"})))
	assert.Empty(t, ApplyFilters(catalog, Filter{Keyword: "tablet"}))
}

func TestApplyFilters_BrandAndKeywordCombine(t *testing.T) {
	catalog := catalogFixture()
	assert.Equal(t, []string{"P1", "P3"}, ids(ApplyFilters(catalog, Filter{Brand: "Acme"})))
	assert.Equal(t, []string{"P1"}, ids(ApplyFilters(catalog, Filter{Brand: "Acme", Keyword: "camera"})))
	assert.Empty(t, ApplyFilters(catalog, Filter{Brand: "acme"}), "brand match is exact")
	assert.Equal(t, []string{"P3", "P1"}, ids(ApplyFilters(catalog, Filter{Brand: "Acme", Sort: SortPriceAsc})))
}

func TestApplyFilters_DoesNotReorderCatalog(t *testing.T) {
	catalog := catalogFixture()
	_ = ApplyFilters(catalog, Filter{Sort: SortPriceAsc})
	assert.Equal(t, []string{"P1", "P2", "P3", "P4"}, ids(catalog))
}

func TestBrands(t *testing.T) {
	assert.Equal(t, []string{"Acme", "Zeta", "Nova"}, Brands(catalogFixture()))
	assert.Empty(t, Brands(nil))
}
