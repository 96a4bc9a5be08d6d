package main

import (
	"context"
	"log"
	"os"

	"phonestore/internal/config"
	productrepo "phonestore/internal/repository/product"
	"phonestore/internal/seed"
	"phonestore/internal/store"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	n, err := seed.Apply(ctx, productrepo.NewCollection(st, logger))
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Printf("seed applied, %d products", n)
}
