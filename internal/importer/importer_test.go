package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"phonestore/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
	err   error
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,name,brand,description,price,rating,thumbnail,badges,variants
iphone-15,iPhone 15,Apple,Chip A16,22.990.000,4.8,https://example.com/ip15.png,Mới,128GB;256GB
,,,,,,,,512GB
galaxy-a55,Galaxy A55,Samsung,IP67,9690000,4.4,,,`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 products saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.ID != "iphone-15" || first.Brand != "Apple" || first.Price != 22990000 || first.Rating != 4.8 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if len(first.Variants) != 3 || first.Variants[2] != "512GB" {
		t.Fatalf("expected continuation row variant appended, got %v", first.Variants)
	}
	if len(first.Badges) != 1 || first.Badges[0] != "Mới" {
		t.Fatalf("unexpected badges: %v", first.Badges)
	}
	if repo.items[1].Variants != nil {
		t.Fatalf("expected no variants on second product, got %v", repo.items[1].Variants)
	}
}

func TestCSVImporter_RejectsIncompleteRow(t *testing.T) {
	csvData := `id,name,brand,price
iphone-15,iPhone 15,,22990000`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing brand")
	}
}

func TestCSVImporter_RejectsBadPrice(t *testing.T) {
	csvData := `id,name,brand,price
iphone-15,iPhone 15,Apple,abc`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})

	_, err := imp.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "invalid price") {
		t.Fatalf("expected price error, got %v", err)
	}
}

func TestCSVImporter_RatingDecimalComma(t *testing.T) {
	csvData := `id,name,brand,price,rating
iphone-15,iPhone 15,Apple,22990000,"4,5"`
	repo := &stubProductRepo{}

	if _, err := NewCSVImporter(strings.NewReader(csvData), repo).Run(context.Background()); err != nil {
		t.Fatalf("import run: %v", err)
	}
	if len(repo.items) != 1 || repo.items[0].Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %+v", repo.items)
	}
}

func TestCSVImporter_RejectsBadRating(t *testing.T) {
	csvData := `id,name,brand,price,rating
iphone-15,iPhone 15,Apple,22990000,tốt`
	repo := &stubProductRepo{}

	_, err := NewCSVImporter(strings.NewReader(csvData), repo).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "line 2: invalid rating") {
		t.Fatalf("expected rating error with line number, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected nothing saved, got %d", len(repo.items))
	}
}

func TestCSVImporter_MissingIDColumn(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("name,brand\nA,B\n"), &stubProductRepo{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected header error")
	}
}

func TestCSVImporter_PropagatesWriteError(t *testing.T) {
	csvData := `id,name,brand,price
iphone-15,iPhone 15,Apple,22990000`
	boom := errors.New("disk full")

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{err: boom})

	count, err := imp.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected nothing imported, got %d", count)
	}
}
