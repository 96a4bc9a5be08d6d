package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"phonestore/internal/config"
	"phonestore/internal/events"
	"phonestore/internal/httpserver"
	"phonestore/internal/i18n"
	orderrepo "phonestore/internal/repository/order"
	productrepo "phonestore/internal/repository/product"
	userrepo "phonestore/internal/repository/user"
	ordersvc "phonestore/internal/service/order"
	productsvc "phonestore/internal/service/product"
	usersvc "phonestore/internal/service/user"
	"phonestore/internal/store"
	"phonestore/web"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()
	logger.Printf("using %s store", cfg.StoreDriver)

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		p, err := events.DialAMQP(cfg.AMQPURL, events.DefaultQueue, logger)
		if err != nil {
			logger.Fatalf("connect amqp: %v", err)
		}
		publisher = p
	}
	defer publisher.Close()

	productService := productsvc.New(productrepo.NewCollection(st, logger))
	orderService := ordersvc.New(orderrepo.NewCollection(st, logger), publisher, logger)
	userService := usersvc.New(userrepo.NewCollection(st, logger))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ProductSvc: productService,
		OrderSvc:   orderService,
		UserSvc:    userService,
		Store:      st,
		Translator: i18n.New(cfg.DefaultLocale),
		Assets:     web.Static(),
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
