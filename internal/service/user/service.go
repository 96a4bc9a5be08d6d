package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"phonestore/internal/domain"
	userrepo "phonestore/internal/repository/user"
)

// Service registers checkout customers as users, one per email.
type Service struct {
	repo  userrepo.Repository
	now   func() time.Time
	newID func() string
}

func New(repo userrepo.Repository) *Service {
	return &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return domain.NewID(domain.UserIDPrefix) },
	}
}

// CreateInput is the user registration payload.
type CreateInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Create returns the existing user for the email (created=false) or persists a new one.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, bool, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if fullName == "" || email == "" {
		return nil, false, domain.NewValidationError(domain.MsgUserIncomplete)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, domain.User{
		ID:        s.newID(),
		FullName:  fullName,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
