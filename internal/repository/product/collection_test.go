package product

import (
	"context"
	"errors"
	"testing"

	"phonestore/internal/domain"
	"phonestore/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) Repository {
	t.Helper()
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	return NewCollection(s, nil)
}

func TestCollection_ListEmptyWhenAbsent(t *testing.T) {
	repo := newRepo(t)
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCollection_UpsertKeepsOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, domain.Product{ID: "P1", Name: "One", Price: 100})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, domain.Product{ID: "P2", Name: "Two", Price: 200})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, domain.Product{ID: "P1", Name: "One v2", Price: 150})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P1", list[0].ID)
	assert.Equal(t, "One v2", list[0].Name)
	assert.Equal(t, int64(150), list[0].Price)
	assert.Equal(t, "P2", list[1].ID)

	got, err := repo.GetByID(ctx, "P2")
	require.NoError(t, err)
	assert.Equal(t, "Two", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCollection_UpsertRequiresID(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.Upsert(context.Background(), domain.Product{Name: "nameless"})
	assert.EqualError(t, err, "product id required")
}

func TestCollection_UpsertStoresEmptyLists(t *testing.T) {
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	repo := NewCollection(s, nil)
	ctx := context.Background()

	saved, err := repo.Upsert(ctx, domain.Product{ID: "P1", Name: "Bare", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, []string{}, saved.Badges)
	assert.Equal(t, []string{}, saved.Variants)

	raw, err := s.Read(ctx, store.Products)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "null")
	assert.Contains(t, string(raw), `"badges": []`)
}
