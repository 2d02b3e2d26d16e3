package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/inventory-service/internal/clock"
	"github.com/MikeMC777/inventory-service/internal/product"
)

func TestReturnedValuesAreCopies(t *testing.T) {
	s := New(clock.NewMock(time.Unix(0, 0).UTC()))
	ctx := context.Background()

	p := &product.Product{Name: "Mat", SKU: "M-1", CurrentInventory: 4}
	require.NoError(t, s.Products().Create(ctx, p))
	p.CurrentInventory = 100

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.CurrentInventory)

	got.Name = "changed"
	again, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mat", again.Name)
}

func TestDuplicateSKU(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	require.NoError(t, s.Products().Create(ctx, &product.Product{Name: "a", SKU: "X"}))
	assert.ErrorIs(t, s.Products().Create(ctx, &product.Product{Name: "b", SKU: "X"}), product.ErrDuplicateSKU)
}

func TestOrderEmbedsCurrentProduct(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	p := &product.Product{Name: "Mat", SKU: "M-1", CurrentInventory: 4}
	require.NoError(t, s.Products().Create(ctx, p))

	o, err := s.Orders().Create(ctx, p.ID, 1)
	require.NoError(t, err)
	_, err = s.Products().UpdateStock(ctx, p.ID, 50)
	require.NoError(t, err)

	got, err := s.Orders().GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Product.CurrentInventory)
	assert.NoError(t, s.Ping(ctx))
}
