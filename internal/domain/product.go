package domain

// Product is a read-only catalog entry. Price is in whole VND.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Rating      float64  `json:"rating"`
	Thumbnail   string   `json:"thumbnail"`
	Badges      []string `json:"badges"`
	Variants    []string `json:"variants"`
}

// DefaultVariant is the variant a new cart line starts with.
func (p Product) DefaultVariant() string {
	if len(p.Variants) == 0 {
		return ""
	}
	return p.Variants[0]
}
