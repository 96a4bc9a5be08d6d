package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"phonestore/internal/config"
	"phonestore/internal/importer"
	productrepo "phonestore/internal/repository/product"
	"phonestore/internal/store"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to product catalog CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	logger := log.New(os.Stderr, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewCollection(st, logger))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products into %s store in %s\n", count, cfg.StoreDriver, time.Since(start).Truncate(time.Millisecond))
}
