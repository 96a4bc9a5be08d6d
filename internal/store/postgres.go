package store

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection as one jsonb document in the collections table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) *PostgresStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &PostgresStore{pool: pool, logger: logger}
}

func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	const q = `SELECT payload::text FROM collections WHERE name = $1`
	var payload string
	if err := s.pool.QueryRow(ctx, q, name).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(name)
		}
		s.logger.Printf("postgres store: read %s error=%v", name, err)
		return nil, err
	}
	return []byte(payload), nil
}

func (s *PostgresStore) Write(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	const q = `
INSERT INTO collections (name, payload, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (name) DO UPDATE SET
    payload = EXCLUDED.payload,
    updated_at = EXCLUDED.updated_at
`
	if _, err := s.pool.Exec(ctx, q, name, string(data)); err != nil {
		s.logger.Printf("postgres store: write %s error=%v", name, err)
		return err
	}
	s.logger.Printf("postgres store: wrote %s bytes=%d", name, len(data))
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
