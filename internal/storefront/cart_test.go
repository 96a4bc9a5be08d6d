package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"phonestore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	phoneA = domain.Product{ID: "P1", Name: "Acme One", Brand: "Acme", Price: 1000000, Rating: 4.5, Variants: []string{"128GB", "256GB"}}
	phoneZ = domain.Product{ID: "P2", Name: "Zeta Z", Brand: "Zeta", Price: 500000, Rating: 4.8, Variants: []string{"Xanh"}}
)

func newCart(t *testing.T) (*CartStore, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	cart, err := NewCartStore(context.Background(), storage)
	require.NoError(t, err)
	return cart, storage
}

func storedLines(t *testing.T, s Storage) []domain.CartLine {
	t.Helper()
	raw, err := s.Get(context.Background(), CartKey)
	require.NoError(t, err)
	var lines []domain.CartLine
	require.NoError(t, json.Unmarshal(raw, &lines))
	return lines
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name  string
		lines []domain.CartLine
		want  Totals
	}{
		{"empty", nil, Totals{}},
		{"single", []domain.CartLine{{Price: 1000000, Quantity: 1}}, Totals{Subtotal: 1000000, Shipping: ShippingFee, Total: 1030000}},
		{"several", []domain.CartLine{{Price: 500000, Quantity: 3}, {Price: 250, Quantity: 2}}, Totals{Subtotal: 1500500, Shipping: ShippingFee, Total: 1530500}},
		{"free items", []domain.CartLine{{Price: 0, Quantity: 4}}, Totals{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.lines)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got.Subtotal+got.Shipping, got.Total)
			assert.Equal(t, got.Subtotal > 0, got.Shipping != 0)
		})
	}
}

func TestCartStore_AddTwiceIncrementsOneLine(t *testing.T) {
	cart, storage := newCart(t)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, phoneA))
	require.NoError(t, cart.Add(ctx, phoneA))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, domain.CartLine{ID: "P1", Name: "Acme One", Price: 1000000, Variant: "128GB", Quantity: 2}, lines[0])
	assert.Equal(t, lines, storedLines(t, storage))
}

func TestCartStore_AddWithoutVariants(t *testing.T) {
	cart, _ := newCart(t)
	require.NoError(t, cart.Add(context.Background(), domain.Product{ID: "P9", Name: "Case", Price: 10}))
	assert.Equal(t, "", cart.Lines()[0].Variant)
}

func TestCartStore_ChangeQuantityClampsAtOne(t *testing.T) {
	cart, storage := newCart(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, cart.Add(ctx, phoneA))
	}

	require.NoError(t, cart.ChangeQuantity(ctx, "P1", -100))
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	require.NoError(t, cart.ChangeQuantity(ctx, "P1", -1))
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	require.NoError(t, cart.ChangeQuantity(ctx, "P1", 4))
	assert.Equal(t, 5, cart.Lines()[0].Quantity)
	assert.Equal(t, 5, storedLines(t, storage)[0].Quantity)
}

func TestCartStore_ChangeQuantityLeavesOtherLines(t *testing.T) {
	cart, _ := newCart(t)
	ctx := context.Background()
	require.NoError(t, cart.Add(ctx, phoneA))
	require.NoError(t, cart.Add(ctx, phoneZ))

	require.NoError(t, cart.ChangeQuantity(ctx, "P2", 2))
	require.NoError(t, cart.ChangeQuantity(ctx, "missing", 2))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 3, lines[1].Quantity)
}

func TestCartStore_Remove(t *testing.T) {
	cart, storage := newCart(t)
	ctx := context.Background()
	require.NoError(t, cart.Add(ctx, phoneA))
	require.NoError(t, cart.Add(ctx, phoneZ))
	require.NoError(t, cart.ChangeQuantity(ctx, "P1", 7))

	require.NoError(t, cart.Remove(ctx, "P1"))

	for _, l := range cart.Lines() {
		assert.NotEqual(t, "P1", l.ID)
	}
	assert.Len(t, cart.Lines(), 1)
	assert.Len(t, storedLines(t, storage), 1)
}

func TestCartStore_RestoresFromStorage(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()
	first, err := NewCartStore(ctx, storage)
	require.NoError(t, err)
	require.NoError(t, first.Add(ctx, phoneZ))

	second, err := NewCartStore(ctx, storage)
	require.NoError(t, err)
	assert.Equal(t, first.Lines(), second.Lines())
}

func TestCartStore_CorruptStorage(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), CartKey, []byte("{oops")))
	_, err := NewCartStore(context.Background(), storage)
	assert.Error(t, err)
}

func TestCartStore_NullStoredCartIsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), CartKey, []byte("null")))
	cart, err := NewCartStore(context.Background(), storage)
	require.NoError(t, err)
	assert.NotNil(t, cart.Lines())
	assert.Zero(t, cart.Len())
}

type failingStorage struct{ *MemoryStorage }

func (failingStorage) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }

func TestCartStore_OnChangeRunsAfterPersist(t *testing.T) {
	storage := NewMemoryStorage()
	cart, err := NewCartStore(context.Background(), storage)
	require.NoError(t, err)

	var rendered []Totals
	cart.OnChange(func(lines []domain.CartLine, totals Totals) {
		// The listener must see what storage already holds.
		assert.Equal(t, lines, storedLines(t, storage))
		rendered = append(rendered, totals)
	})

	ctx := context.Background()
	require.NoError(t, cart.Add(ctx, phoneA))
	require.NoError(t, cart.Add(ctx, phoneZ))
	require.NoError(t, cart.Clear(ctx))

	require.Len(t, rendered, 3)
	assert.Equal(t, int64(1030000), rendered[0].Total)
	assert.Equal(t, int64(1530000), rendered[1].Total)
	assert.Equal(t, Totals{}, rendered[2])
	assert.Empty(t, storedLines(t, storage))
}

func TestCartStore_PersistFailureSkipsRender(t *testing.T) {
	cart, err := NewCartStore(context.Background(), failingStorage{NewMemoryStorage()})
	require.NoError(t, err)
	called := false
	cart.OnChange(func([]domain.CartLine, Totals) { called = true })

	assert.Error(t, cart.Add(context.Background(), phoneA))
	assert.False(t, called)
}
