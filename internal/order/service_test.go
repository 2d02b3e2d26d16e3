package order_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MikeMC777/inventory-service/internal/apperr"
	"github.com/MikeMC777/inventory-service/internal/clock"
	"github.com/MikeMC777/inventory-service/internal/memstore"
	"github.com/MikeMC777/inventory-service/internal/order"
	"github.com/MikeMC777/inventory-service/internal/product"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func i64p(v int64) *int64 { return &v }
func intp(v int) *int     { return &v }

type fixture struct {
	orders   *order.Service
	products *product.Service
	clk      *clock.Mock
}

// newFixture stores one product (id 1) with the given stock.
func newFixture(t *testing.T, stock int) fixture {
	t.Helper()
	clk := clock.NewMock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	st := memstore.New(clk)
	f := fixture{
		orders:   order.NewService(st.Orders()),
		products: product.NewService(st.Products()),
		clk:      clk,
	}
	p := &product.Product{Name: "Yoga Mat", SKU: "FIT-001", Price: decimal.RequireFromString("25.50"), CurrentInventory: stock}
	require.NoError(t, f.products.Create(context.Background(), p))
	require.EqualValues(t, 1, p.ID)
	return f
}

func (f fixture) stock(t *testing.T) int {
	t.Helper()
	items, err := f.products.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	return items[0].CurrentInventory
}

func TestCreate_DecrementsStock(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	o, err := f.orders.Create(ctx, i64p(1), intp(3))
	require.NoError(t, err)
	assert.EqualValues(t, 1, o.ID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, 3, o.Quantity)
	assert.Equal(t, 2, o.Product.CurrentInventory)
	assert.Equal(t, 2, f.stock(t))

	o, err = f.orders.Create(ctx, i64p(1), intp(2))
	require.NoError(t, err)
	assert.EqualValues(t, 2, o.ID)
	assert.Equal(t, 0, f.stock(t))
}

func TestCreate_InsufficientStock(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	_, err := f.orders.Create(ctx, i64p(1), intp(3))
	require.NoError(t, err)

	_, err = f.orders.Create(ctx, i64p(1), intp(3))
	require.Error(t, err)
	is, ok := apperr.AsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, 2, is.Available)

	// nothing changed
	assert.Equal(t, 2, f.stock(t))
	all, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		id   *int64
		qty  *int
		msg  string
	}{
		{"missing product", nil, intp(1), "Missing product_id or quantity"},
		{"zero product", i64p(0), intp(1), "Missing product_id or quantity"},
		{"missing quantity", i64p(1), nil, "Missing product_id or quantity"},
		{"zero quantity", i64p(1), intp(0), "Missing product_id or quantity"},
		{"negative quantity", i64p(1), intp(-2), "quantity must be a positive integer"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.orders.Create(ctx, tc.id, tc.qty)
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
	assert.Equal(t, 5, f.stock(t))
}

func TestCreate_QuantityBeyondColumnRange(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.orders.Create(context.Background(), i64p(1), intp(math.MaxInt32+1))
	require.Error(t, err)
	is, ok := apperr.AsInsufficientStock(err)
	require.True(t, ok, "err=%v", err)
	assert.Equal(t, 5, is.Available)
	assert.Equal(t, 5, f.stock(t))
}

func TestCreate_UnknownProduct(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.orders.Create(context.Background(), i64p(42), intp(1))
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Product not found", err.Error())
}

func TestCreate_ConcurrentNeverOversells(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.orders.Create(ctx, i64p(1), intp(1)); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.Equal(t, 0, f.stock(t))
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, i64p(1), intp(1))
	require.NoError(t, err)

	f.clk.Advance(time.Hour)
	o, err := f.orders.UpdateStatus(ctx, created.ID, "Shipped to the moon")
	require.NoError(t, err)
	assert.Equal(t, "Shipped to the moon", o.Status)
	assert.Equal(t, created.CreatedAt, o.CreatedAt)
	assert.True(t, o.UpdatedAt.After(created.UpdatedAt))

	// any value may follow any other
	_, err = f.orders.UpdateStatus(ctx, created.ID, order.StatusPending)
	require.NoError(t, err)

	got, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)
	assert.Equal(t, "Yoga Mat", got.Product.Name)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	created, err := f.orders.Create(ctx, i64p(1), intp(1))
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, created.ID, "")
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Missing status", err.Error())

	_, err = f.orders.UpdateStatus(ctx, 99, "Shipped")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Order not found", err.Error())

	got, err := f.orders.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, got.Status)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.orders.Get(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))
}
