package store

import (
	"context"
	"fmt"
	"log"

	"phonestore/internal/config"
	"phonestore/internal/db"
)

// Open builds the Store selected by cfg.StoreDriver. The returned close func
// releases the backend's resources and is never nil.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (Store, func(), error) {
	switch cfg.StoreDriver {
	case "", config.DriverFile:
		s, err := NewFile(cfg.DataDir, logger)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() {}, nil
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect db: %w", err)
		}
		return NewPostgres(pool, logger), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
