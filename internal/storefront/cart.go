package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"phonestore/internal/domain"
)

// CartKey is the storage key the cart is persisted under.
const CartKey = "phoneStoreCart"

// ShippingFee is charged once per non-empty cart, in VND.
const ShippingFee int64 = 30000

// Totals summarizes a cart.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// ComputeTotals sums price*quantity and adds shipping when the subtotal is positive.
func ComputeTotals(lines []domain.CartLine) Totals {
	var t Totals
	for _, l := range lines {
		t.Subtotal += l.LineTotal()
	}
	if t.Subtotal > 0 {
		t.Shipping = ShippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

// CartStore owns the shopper's cart. Every mutation persists the whole cart and
// then notifies OnChange listeners. It is not safe for concurrent use.
type CartStore struct {
	storage   Storage
	lines     []domain.CartLine
	listeners []func([]domain.CartLine, Totals)
}

// NewCartStore restores the cart saved in storage. A missing entry yields an empty cart.
func NewCartStore(ctx context.Context, storage Storage) (*CartStore, error) {
	s := &CartStore{storage: storage, lines: []domain.CartLine{}}
	raw, err := storage.Get(ctx, CartKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("restore cart: %w", err)
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if s.lines == nil {
		s.lines = []domain.CartLine{}
	}
	return s, nil
}

// OnChange registers fn to run after every persisted mutation.
func (s *CartStore) OnChange(fn func(lines []domain.CartLine, totals Totals)) {
	s.listeners = append(s.listeners, fn)
}

// Lines returns a copy of the current lines.
func (s *CartStore) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *CartStore) Totals() Totals {
	return ComputeTotals(s.lines)
}

func (s *CartStore) Len() int {
	return len(s.lines)
}

// Add increments the line for p, or appends a new line with p's first variant.
func (s *CartStore) Add(ctx context.Context, p domain.Product) error {
	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			return s.commit(ctx)
		}
	}
	s.lines = append(s.lines, domain.CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Variant:  p.DefaultVariant(),
		Quantity: 1,
	})
	return s.commit(ctx)
}

// ChangeQuantity applies delta to the matching line, never going below 1.
// Removing a line takes an explicit Remove.
func (s *CartStore) ChangeQuantity(ctx context.Context, productID string, delta int) error {
	next := make([]domain.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		if l.ID == productID {
			l.Quantity = max(1, l.Quantity+delta)
		}
		if l.Quantity > 0 {
			next = append(next, l)
		}
	}
	s.lines = next
	return s.commit(ctx)
}

// Remove drops the matching line regardless of its quantity.
func (s *CartStore) Remove(ctx context.Context, productID string) error {
	next := make([]domain.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		if l.ID != productID {
			next = append(next, l)
		}
	}
	s.lines = next
	return s.commit(ctx)
}

// Clear empties the cart, as after a successful checkout.
func (s *CartStore) Clear(ctx context.Context) error {
	s.lines = []domain.CartLine{}
	return s.commit(ctx)
}

func (s *CartStore) commit(ctx context.Context) error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(ctx, CartKey, raw); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	totals := ComputeTotals(s.lines)
	for _, fn := range s.listeners {
		fn(s.Lines(), totals)
	}
	return nil
}
