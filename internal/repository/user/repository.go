package user

import (
	"context"

	"phonestore/internal/domain"
)

type Repository interface {
	// GetByEmail matches case-insensitively and returns domain.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
}
