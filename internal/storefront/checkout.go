package storefront

import (
	"context"

	"phonestore/internal/domain"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = domain.NewValidationError(domain.MsgCartEmpty)

// Checkout registers the customer, submits the cart as an order and clears
// the cart once the order exists. Failures leave the cart as it was; nothing is retried.
func Checkout(ctx context.Context, client *Client, cart *CartStore, customer domain.Customer, payment domain.Payment) (*domain.Order, error) {
	if cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	// A failed registration stops the checkout before any order is placed.
	if _, err := client.RegisterUser(ctx, customer); err != nil {
		return nil, err
	}
	order, err := client.PlaceOrder(ctx, customer, domain.Cart(cart.Lines()), payment)
	if err != nil {
		return nil, err
	}
	if err := cart.Clear(ctx); err != nil {
		return order, err
	}
	return order, nil
}
