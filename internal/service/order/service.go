package order

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"phonestore/internal/domain"
	"phonestore/internal/events"
	orderrepo "phonestore/internal/repository/order"
)

// Service validates checkouts and records them as orders.
type Service struct {
	repo      orderrepo.Repository
	publisher events.Publisher
	logger    *log.Logger
	now       func() time.Time
	newID     func() string
}

func New(repo orderrepo.Repository, publisher events.Publisher, logger *log.Logger) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return domain.NewID(domain.OrderIDPrefix) },
	}
}

// CreateInput is the checkout payload.
type CreateInput struct {
	Customer *domain.Customer `json:"customer"`
	Cart     domain.Cart      `json:"cart"`
	Payment  *domain.Payment  `json:"payment"`
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// Create persists a processing order. Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if !customerComplete(in.Customer) {
		return nil, domain.NewValidationError(domain.MsgCustomerIncomplete)
	}
	if len(in.Cart) == 0 {
		return nil, domain.NewValidationError(domain.MsgCartEmpty)
	}

	payment := domain.Payment{Method: domain.PaymentCOD}
	if in.Payment != nil && strings.TrimSpace(in.Payment.Method) != "" {
		payment.Method = strings.TrimSpace(in.Payment.Method)
	}

	order, err := s.repo.Create(ctx, domain.Order{
		ID:        s.newID(),
		Customer:  *in.Customer,
		Cart:      in.Cart,
		Payment:   payment,
		Status:    domain.OrderStatusProcessing,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}

	// Notification failures are logged only; the order is already stored.
	if err := s.publisher.PublishOrderCreated(ctx, *order); err != nil {
		s.logger.Printf("order service: notify id=%s error=%v", order.ID, err)
	}
	return order, nil
}

func customerComplete(c *domain.Customer) bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.FullName) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Address) != ""
}
