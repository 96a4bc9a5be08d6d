// Package storefront holds the shopper-side logic of the phone store: the cart
// store, catalog filtering and sorting, and a small client for the HTTP API.
// The browser page and the terminal client follow the same rules.
package storefront
