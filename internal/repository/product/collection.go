package product

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"phonestore/internal/domain"
	"phonestore/internal/store"
)

type collectionRepo struct {
	store  store.Store
	logger *log.Logger
}

// NewCollection returns a Repository over the products collection.
func NewCollection(s store.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &collectionRepo{store: s, logger: logger}
}

func (r *collectionRepo) List(ctx context.Context) ([]domain.Product, error) {
	products, err := store.ReadJSON(ctx, r.store, store.Products, []domain.Product{})
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(products))
	return products, nil
}

func (r *collectionRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	r.logger.Printf("product repo: get id=%s not found", id)
	return nil, domain.ErrNotFound
}

// Upsert replaces the product with the same ID in place, or appends it.
func (r *collectionRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(product.ID) == "" {
		return nil, errors.New("product id required")
	}
	product = withEmptyLists(product)
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, product)
	}
	if err := store.WriteJSON(ctx, r.store, store.Products, products); err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", product.ID, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s replaced=%t count=%d", product.ID, replaced, len(products))
	return &product, nil
}

// withEmptyLists stores absent badges and variants as [] rather than null.
func withEmptyLists(p domain.Product) domain.Product {
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.Variants == nil {
		p.Variants = []string{}
	}
	return p
}
