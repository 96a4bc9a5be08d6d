// Package store persists named JSON collections as whole documents.
//
// Every write replaces the complete collection. There is no locking between
// writers: two concurrent read-modify-write cycles on the same collection can
// lose an update, and the last write wins.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"phonestore/internal/domain"
)

// Collection names.
const (
	Products = "products"
	Orders   = "orders"
	Users    = "users"
)

// Store reads and overwrites whole collections.
type Store interface {
	// Read returns the raw collection, or domain.ErrNotFound when it does not exist.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the collection.
	Write(ctx context.Context, name string, data []byte) error
	Ping(ctx context.Context) error
}

var namePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("store: invalid collection name %q", name)
	}
	return nil
}

// ReadJSON decodes the named collection, returning fallback when it is absent.
func ReadJSON[T any](ctx context.Context, s Store, name string, fallback T) (T, error) {
	raw, err := s.Read(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("read %s: %w", name, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fallback, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

// WriteJSON encodes v with two-space indentation and overwrites the collection.
func WriteJSON(ctx context.Context, s Store, name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.Write(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func notFound(name string) error {
	return fmt.Errorf("collection %s: %w", name, domain.ErrNotFound)
}
