package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"phonestore/internal/domain"
	"phonestore/internal/i18n"
	"phonestore/internal/storefront"
)

type options struct {
	apiURL    string
	cartDir   string
	redisAddr string
	lang      string
}

// app is built once per invocation, before any subcommand runs.
type app struct {
	out        io.Writer
	client     *storefront.Client
	cart       *storefront.CartStore
	translator *i18n.Translator
	locale     language.Tag
	redis      *redis.Client
	closers    []func() error
}

func newApp(ctx context.Context, out io.Writer, opts options) (*app, error) {
	translator := i18n.New(opts.lang)
	a := &app{
		out:        out,
		client:     storefront.NewClient(opts.apiURL, nil, opts.lang),
		translator: translator,
		locale:     translator.Resolve(opts.lang),
	}

	var storage storefront.Storage
	if opts.redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: opts.redisAddr})
		a.redis = rdb
		a.closers = append(a.closers, rdb.Close)
		storage = storefront.NewRedisStorage(rdb, "")
	} else {
		dir := opts.cartDir
		if dir == "" {
			dir = defaultCartDir()
		}
		fs, err := storefront.NewFileStorage(dir)
		if err != nil {
			return nil, err
		}
		storage = fs
	}

	cart, err := storefront.NewCartStore(ctx, storage)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("load cart: %w", err)
	}
	cart.OnChange(a.renderCart)
	a.cart = cart
	return a, nil
}

func (a *app) close() {
	for _, fn := range a.closers {
		_ = fn()
	}
	a.closers = nil
}

func (a *app) price(amount int64) string {
	return storefront.FormatPrice(a.locale, amount)
}

func (a *app) message(key string, args ...any) string {
	return a.translator.Message(a.locale, key, args...)
}

// describe turns API and validation failures into the shopper's language.
func (a *app) describe(err error) error {
	var apiErr *storefront.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return errors.New(a.message(verr.Key))
	}
	return err
}

func (a *app) renderCart(lines []domain.CartLine, totals storefront.Totals) {
	if len(lines) == 0 {
		fmt.Fprintln(a.out, a.message(domain.MsgCartEmpty))
		return
	}
	for _, l := range lines {
		variant := l.Variant
		if variant == "" {
			variant = "-"
		}
		fmt.Fprintf(a.out, "%-16s %-24s %-8s x%-3d %s\n", l.ID, l.Name, variant, l.Quantity, a.price(l.LineTotal()))
	}
	fmt.Fprintf(a.out, "subtotal %s  shipping %s  total %s\n",
		a.price(totals.Subtotal), a.price(totals.Shipping), a.price(totals.Total))
}

func defaultCartDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "phonestore")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".phonestore")
	}
	return ".phonestore"
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appCtxKey{}).(*app)
}

type appCtxKey struct{}
