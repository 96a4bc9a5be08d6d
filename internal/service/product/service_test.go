package product

import (
	"context"
	"errors"
	"testing"

	"phonestore/internal/domain"
	productrepo "phonestore/internal/repository/product"
	"phonestore/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ReturnsCatalogVerbatim(t *testing.T) {
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	catalog := []domain.Product{
		{ID: "P2", Name: "Zeta Z", Brand: "Zeta", Price: 500000, Rating: 4.8, Badges: []string{"Mới"}, Variants: []string{"Xanh"}},
		{ID: "P1", Name: "Acme A", Brand: "Acme", Price: 1000000, Rating: 4.5, Badges: []string{}, Variants: []string{"Đen", "Trắng"}},
	}
	require.NoError(t, store.WriteJSON(context.Background(), s, store.Products, catalog))

	got, err := New(productrepo.NewCollection(s, nil)).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestList_EmptyWhenCollectionAbsent(t *testing.T) {
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)

	got, err := New(productrepo.NewCollection(s, nil)).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGet(t *testing.T) {
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	catalog := []domain.Product{
		{ID: "P1", Name: "Acme A", Brand: "Acme", Price: 1000000},
		{ID: "P2", Name: "Zeta Z", Brand: "Zeta", Price: 500000},
	}
	require.NoError(t, store.WriteJSON(context.Background(), s, store.Products, catalog))
	svc := New(productrepo.NewCollection(s, nil))

	got, err := svc.Get(context.Background(), "P2")
	require.NoError(t, err)
	assert.Equal(t, "Zeta Z", got.Name)

	_, err = svc.Get(context.Background(), "P9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
