package domain

// CartLine snapshots a product at add-time. ID is the product identifier.
type CartLine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Variant  string `json:"variant"`
	Quantity int    `json:"quantity"`
}

// Cart is an ordered list of lines, unique by product ID.
type Cart []CartLine

// LineTotal is price times quantity for a single line.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}
