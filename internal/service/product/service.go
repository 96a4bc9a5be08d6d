package product

import (
	"context"

	"phonestore/internal/domain"
	productrepo "phonestore/internal/repository/product"
)

// Service serves the catalog as stored. Filtering and sorting happen on the client.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product in persisted order.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
