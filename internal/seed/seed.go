// Package seed loads a demo phone catalog for manual testing.
package seed

import (
	"context"
	"fmt"

	"phonestore/internal/domain"
)

// ProductWriter is the part of the product repository seeding needs.
type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Catalog returns the demo products. Prices are whole VND.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "iphone-15-pro",
			Name:        "iPhone 15 Pro",
			Brand:       "Apple",
			Description: "Khung titan, chip A17 Pro, camera 48MP",
			Price:       28990000,
			Rating:      4.8,
			Thumbnail:   "https://images.phonestore.local/iphone-15-pro.png",
			Badges:      []string{"Mới", "Trả góp 0%"},
			Variants:    []string{"128GB", "256GB", "512GB"},
		},
		{
			ID:          "iphone-13",
			Name:        "iPhone 13",
			Brand:       "Apple",
			Description: "Màn hình OLED 6.1 inch, pin bền cả ngày",
			Price:       13490000,
			Rating:      4.6,
			Thumbnail:   "https://images.phonestore.local/iphone-13.png",
			Variants:    []string{"128GB", "256GB"},
		},
		{
			ID:          "galaxy-s24-ultra",
			Name:        "Galaxy S24 Ultra",
			Brand:       "Samsung",
			Description: "Bút S Pen, camera 200MP, Galaxy AI",
			Price:       27990000,
			Rating:      4.7,
			Thumbnail:   "https://images.phonestore.local/galaxy-s24-ultra.png",
			Badges:      []string{"Bán chạy"},
			Variants:    []string{"256GB", "512GB"},
		},
		{
			ID:          "galaxy-a55",
			Name:        "Galaxy A55 5G",
			Brand:       "Samsung",
			Description: "Kháng nước IP67, màn hình Super AMOLED 120Hz",
			Price:       9690000,
			Rating:      4.4,
			Thumbnail:   "https://images.phonestore.local/galaxy-a55.png",
			Variants:    []string{"128GB", "256GB"},
		},
		{
			ID:          "xiaomi-14",
			Name:        "Xiaomi 14",
			Brand:       "Xiaomi",
			Description: "Ống kính Leica, sạc nhanh 90W",
			Price:       19990000,
			Rating:      4.5,
			Thumbnail:   "https://images.phonestore.local/xiaomi-14.png",
			Variants:    []string{"256GB"},
		},
		{
			ID:          "redmi-note-13",
			Name:        "Redmi Note 13",
			Brand:       "Xiaomi",
			Description: "Pin 5000mAh, giá tốt cho học sinh sinh viên",
			Price:       4890000,
			Rating:      4.2,
			Thumbnail:   "https://images.phonestore.local/redmi-note-13.png",
			Badges:      []string{"Giá sốc"},
		},
		{
			ID:          "oppo-reno11",
			Name:        "OPPO Reno11 F",
			Brand:       "OPPO",
			Description: "Thiết kế mỏng nhẹ, camera chân dung 64MP",
			Price:       8490000,
			Rating:      4.3,
			Thumbnail:   "https://images.phonestore.local/oppo-reno11.png",
			Variants:    []string{"256GB"},
		},
	}
}

// Apply upserts the demo catalog. It is idempotent: products are keyed by ID.
func Apply(ctx context.Context, w ProductWriter) (int, error) {
	products := Catalog()
	for _, p := range products {
		if _, err := w.Upsert(ctx, p); err != nil {
			return 0, fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}
	return len(products), nil
}
