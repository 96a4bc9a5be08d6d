package user

import (
	"context"
	"errors"
	"testing"

	"phonestore/internal/domain"
	"phonestore/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_GetByEmailIgnoresCase(t *testing.T) {
	s, err := store.NewFile(t.TempDir(), nil)
	require.NoError(t, err)
	repo := NewCollection(s, nil)
	ctx := context.Background()

	_, err = repo.GetByEmail(ctx, "a@example.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = repo.Create(ctx, domain.User{ID: "USR-1", FullName: "A", Email: "Lan@Example.com"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "lan@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "USR-1", got.ID)
	assert.Equal(t, "Lan@Example.com", got.Email)
}
