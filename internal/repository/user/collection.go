package user

import (
	"context"
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

// NewCollection returns a Repository over the users collection.
func NewCollection(s store.Store, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &collectionRepo{store: s, logger: logger}
}

func (r *collectionRepo) list(ctx context.Context) ([]domain.User, error) {
	users, err := store.ReadJSON(ctx, r.store, store.Users, []domain.User{})
	if err != nil {
		r.logger.Printf("user repo: list error=%v", err)
		return nil, err
	}
	return users, nil
}

func (r *collectionRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *collectionRepo) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	users = append(users, user)
	if err := store.WriteJSON(ctx, r.store, store.Users, users); err != nil {
		r.logger.Printf("user repo: create id=%s error=%v", user.ID, err)
		return nil, err
	}
	r.logger.Printf("user repo: created id=%s count=%d", user.ID, len(users))
	return &user, nil
}
