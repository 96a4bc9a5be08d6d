// Package events announces persisted orders to downstream consumers.
package events

import (
	"context"

	"phonestore/internal/domain"
)

// RoutingOrderCreated is the message type carried by order notifications.
const RoutingOrderCreated = "order.created"

// Publisher announces orders after they have been persisted.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order domain.Order) error
	Close() error
}

// Noop discards every event. It is the default when no broker is configured.
type Noop struct{}

func (Noop) PublishOrderCreated(context.Context, domain.Order) error { return nil }
func (Noop) Close() error                                            { return nil }
