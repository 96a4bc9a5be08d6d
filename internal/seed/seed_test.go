package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productrepo "phonestore/internal/repository/product"
	"phonestore/internal/store"
)

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	fs, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	repo := productrepo.NewCollection(fs, nil)

	n, err := Apply(ctx, repo)
	require.NoError(t, err)
	_, err = Apply(ctx, repo)
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, n)
	assert.Equal(t, Catalog()[0].ID, products[0].ID)
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog() {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
		assert.Positive(t, p.Price)
	}
}
