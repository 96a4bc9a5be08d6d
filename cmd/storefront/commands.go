package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"phonestore/internal/domain"
	"phonestore/internal/i18n"
	"phonestore/internal/storefront"
)

// cli owns the per-invocation app so its connections can be released after
// Execute returns, whether or not the command failed.
type cli struct {
	out  io.Writer
	opts options
	app  *app
}

func newCLI(out io.Writer) *cli {
	return &cli{out: out}
}

func (c *cli) close() {
	if c.app != nil {
		c.app.close()
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse phones, manage a cart and check out against the store API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), c.out, c.opts)
			if err != nil {
				return err
			}
			c.app = a
			cmd.SetContext(context.WithValue(cmd.Context(), appCtxKey{}, a))
			return nil
		},
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.apiURL, "api", "http://localhost:4000", "store API base URL")
	flags.StringVar(&c.opts.cartDir, "cart-dir", "", "directory holding the local cart (default: user config dir)")
	flags.StringVar(&c.opts.redisAddr, "redis", "", "redis address for a shared cart; overrides --cart-dir")
	flags.StringVar(&c.opts.lang, "lang", "vi", "message and number locale (vi or en)")

	root.AddCommand(
		newProductsCmd(),
		newBrandsCmd(),
		newCartCmd(),
		newCheckoutCmd(),
		newOrdersCmd(),
	)
	return root
}

func newProductsCmd() *cobra.Command {
	var f storefront.Filter
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog, optionally filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			catalog, err := a.client.Products(cmd.Context())
			if err != nil {
				return a.describe(err)
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, p := range storefront.ApplyFilters(catalog, f) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\n", p.ID, p.Name, p.Brand, a.price(p.Price), p.Rating)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&f.Keyword, "query", "q", "", "keyword matched against name, brand and description")
	cmd.Flags().StringVar(&f.Brand, "brand", "", "exact brand")
	cmd.Flags().StringVar(&f.Sort, "sort", "", "price-asc, price-desc or rating-desc")
	return cmd
}

func newBrandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the brands present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			catalog, err := a.client.Products(cmd.Context())
			if err != nil {
				return a.describe(err)
			}
			fmt.Fprintln(a.out, a.message(i18n.MsgAllBrands))
			for _, b := range storefront.Brands(catalog) {
				fmt.Fprintln(a.out, "  "+b)
			}
			return nil
		},
	}
}

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the local cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			a.renderCart(a.cart.Lines(), a.cart.Totals())
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Put one unit of a product in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			p, err := a.client.Product(cmd.Context(), args[0])
			if err != nil {
				return a.describe(err)
			}
			return a.cart.Add(cmd.Context(), *p)
		},
	}

	step := func(use, short string, delta int) *cobra.Command {
		return &cobra.Command{
			Use:   use + " PRODUCT_ID",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return appFrom(cmd).cart.ChangeQuantity(cmd.Context(), args[0], delta)
			},
		}
	}

	remove := &cobra.Command{
		Use:   "remove PRODUCT_ID",
		Short: "Drop a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFrom(cmd).cart.Remove(cmd.Context(), args[0])
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).cart.Clear(cmd.Context())
		},
	}

	cmd.AddCommand(
		add,
		step("inc", "Increase a line's quantity by one", 1),
		step("dec", "Decrease a line's quantity by one (never below one)", -1),
		remove,
		clearCmd,
	)
	return cmd
}

func newCheckoutCmd() *cobra.Command {
	var (
		customer domain.Customer
		method   string
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Register the customer and turn the cart into an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			order, err := storefront.Checkout(cmd.Context(), a.client, a.cart, customer, domain.Payment{Method: method})
			if err != nil {
				if errors.Is(err, storefront.ErrEmptyCart) {
					return a.describe(err)
				}
				return fmt.Errorf("%s %w", a.message(i18n.MsgCheckoutFailed), a.describe(err))
			}
			fmt.Fprintln(a.out, a.message(i18n.MsgOrderPlaced, order.ID))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&customer.FullName, "name", "", "full name")
	flags.StringVar(&customer.Email, "email", "", "email address")
	flags.StringVar(&customer.Phone, "phone", "", "phone number")
	flags.StringVar(&customer.Address, "address", "", "delivery address")
	flags.StringVar(&customer.Note, "note", "", "delivery note")
	flags.StringVar(&method, "payment", domain.PaymentCOD, "payment method")
	return cmd
}

func newOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List orders recorded by the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			orders, err := a.client.Orders(cmd.Context())
			if err != nil {
				return a.describe(err)
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			for _, o := range orders {
				total := storefront.ComputeTotals(o.Cart).Total
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Customer.FullName, o.Status, a.price(total))
			}
			return tw.Flush()
		},
	}
}
