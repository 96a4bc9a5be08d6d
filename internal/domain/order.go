package domain

import "time"

const (
	// PaymentCOD is cash on delivery, used when a checkout omits the payment method.
	PaymentCOD = "cod"
	// OrderStatusProcessing is the only status an order is created with.
	OrderStatusProcessing = "processing"
)

type Payment struct {
	Method string `json:"method"`
}

// Order is append-only once persisted.
type Order struct {
	ID        string    `json:"id"`
	Customer  Customer  `json:"customer"`
	Cart      Cart      `json:"cart"`
	Payment   Payment   `json:"payment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
