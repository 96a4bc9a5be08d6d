package order

import (
	"context"
	"io"
	"log"

	"phonestore/internal/domain"
	"phonestore/internal/store"
)

type collectionRepo struct {
	store  store.Store
	logger *log.Logger
}

// NewCollection returns a Repository over the orders collection.
func NewCollection(s store.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &collectionRepo{store: s, logger: logger}
}

func (r *collectionRepo) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := store.ReadJSON(ctx, r.store, store.Orders, []domain.Order{})
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	return orders, nil
}

// Create appends the order and rewrites the whole collection.
// Concurrent creates can overwrite each other; the last write wins.
func (r *collectionRepo) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := store.WriteJSON(ctx, r.store, store.Orders, orders); err != nil {
		r.logger.Printf("order repo: create id=%s error=%v", order.ID, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s count=%d", order.ID, len(orders))
	return &order, nil
}
