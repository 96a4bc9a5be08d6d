package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"phonestore/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog spreadsheets and inserts/updates products.
//
// Expected header: id,name,brand,description,price,rating,thumbnail,badges,variants.
// badges and variants are ';'-separated. A row with an empty id continues the
// previous product and may only add variants and badges.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

type csvRow struct {
	line      int
	product   domain.Product
	priceErr  error
	ratingErr error
}

// Run parses CSV rows and upserts products grouped by id.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["id"]; !ok {
		return 0, errors.New("read headers: missing id column")
	}

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line, _ := i.reader.FieldPos(0)

		row := parseRow(record, index, line)
		if row == nil {
			continue
		}

		if row.product.ID != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		if current != nil {
			current.product.Variants = append(current.product.Variants, row.product.Variants...)
			current.product.Badges = append(current.product.Badges, row.product.Badges...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	p := row.product
	if row.priceErr != nil {
		return fmt.Errorf("line %d: invalid price for %q: %w", row.line, p.ID, row.priceErr)
	}
	if row.ratingErr != nil {
		return fmt.Errorf("line %d: invalid rating for %q: %w", row.line, p.ID, row.ratingErr)
	}
	if p.Name == "" || p.Brand == "" || p.Price <= 0 {
		return fmt.Errorf("line %d: invalid product row (missing required fields) for id %q", row.line, p.ID)
	}

	if _, err := i.productRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", p.ID, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int, line int) *csvRow {
	id := pick(record, index, "id")
	variants := splitList(pick(record, index, "variants"))
	badges := splitList(pick(record, index, "badges"))

	if id == "" && len(variants) == 0 && len(badges) == 0 {
		return nil
	}

	row := &csvRow{
		line: line,
		product: domain.Product{
			ID:          id,
			Name:        pick(record, index, "name"),
			Brand:       pick(record, index, "brand"),
			Description: pick(record, index, "description"),
			Thumbnail:   pick(record, index, "thumbnail"),
			Variants:    variants,
			Badges:      badges,
		},
	}
	if id == "" {
		return row
	}

	if s := pick(record, index, "price"); s != "" {
		row.product.Price, row.priceErr = parsePrice(s)
	}
	if s := pick(record, index, "rating"); s != "" {
		row.product.Rating, row.ratingErr = parseRating(s)
	}
	return row
}

// parsePrice accepts whole VND with optional '.', ',' or space group separators.
func parsePrice(s string) (int64, error) {
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "", "₫", "").Replace(s)
	return strconv.ParseInt(cleaned, 10, 64)
}

// parseRating accepts either '.' or ',' as the decimal separator ("4.5", "4,5").
func parseRating(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
