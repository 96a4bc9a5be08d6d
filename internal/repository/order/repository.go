package order

import (
	"context"

	"phonestore/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}
