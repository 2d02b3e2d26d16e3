// Package memstore keeps products and orders in process memory. It backs
// INVENTORY_STORE=memory for local runs and the handler and service tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MikeMC777/inventory-service/internal/apperr"
	"github.com/MikeMC777/inventory-service/internal/clock"
	"github.com/MikeMC777/inventory-service/internal/order"
	"github.com/MikeMC777/inventory-service/internal/product"
)

type Store struct {
	mu       sync.Mutex
	clock    clock.Clock
	products map[int64]*product.Product
	orders   map[int64]*order.Order
	lastProd int64
	lastOrd  int64
}

func New(c clock.Clock) *Store {
	if c == nil {
		c = clock.Real()
	}
	return &Store{
		clock:    c,
		products: make(map[int64]*product.Product),
		orders:   make(map[int64]*order.Order),
	}
}

// Ping always succeeds; it lets the store stand in for the pool in health checks.
func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Products() product.Repository { return productRepo{s} }

func (s *Store) Orders() order.Repository { return orderRepo{s} }

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *product.Product) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.products {
		if cur.SKU == p.SKU {
			return product.ErrDuplicateSKU
		}
	}
	s.lastProd++
	now := s.clock.Now()
	p.ID, p.CreatedAt, p.UpdatedAt = s.lastProd, now, now
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (r productRepo) GetByID(_ context.Context, id int64) (*product.Product, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r productRepo) List(ctx context.Context) ([]product.Product, error) {
	return r.Search(ctx, product.SearchQuery{})
}

func (r productRepo) Search(_ context.Context, q product.SearchQuery) ([]product.Product, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	kw := strings.ToLower(q.Keyword)
	out := []product.Product{}
	for _, p := range s.products {
		if !strings.Contains(strings.ToLower(p.Name), kw) {
			continue
		}
		if q.Category != "" && (p.Category == nil || *p.Category != q.Category) {
			continue
		}
		if q.Subcategory != "" && (p.Subcategory == nil || *p.Subcategory != q.Subcategory) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r productRepo) UpdateStock(_ context.Context, id int64, stock int) (*product.Product, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	p.CurrentInventory = stock
	p.UpdatedAt = s.clock.Now()
	cp := *p
	return &cp, nil
}

type orderRepo struct{ s *Store }

func (r orderRepo) List(_ context.Context) ([]order.Order, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, s.withProduct(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r orderRepo) GetByID(_ context.Context, id int64) (*order.Order, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := s.withProduct(o)
	return &cp, nil
}

// Create holds the store lock across the stock check, the decrement and the
// insert, so they are applied together or not at all.
func (r orderRepo) Create(_ context.Context, productID int64, quantity int) (*order.Order, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, order.ErrProductNotFound
	}
	if p.CurrentInventory < quantity {
		return nil, apperr.InsufficientStock(p.CurrentInventory)
	}
	now := s.clock.Now()
	p.CurrentInventory -= quantity
	p.UpdatedAt = now

	s.lastOrd++
	o := &order.Order{
		ID:        s.lastOrd,
		ProductID: productID,
		Quantity:  quantity,
		Status:    order.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders[o.ID] = o
	cp := s.withProduct(o)
	return &cp, nil
}

func (r orderRepo) UpdateStatus(_ context.Context, id int64, status string) (*order.Order, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = s.clock.Now()
	cp := s.withProduct(o)
	return &cp, nil
}

// withProduct copies o and embeds the current product row. Caller holds s.mu.
func (s *Store) withProduct(o *order.Order) order.Order {
	cp := *o
	if p, ok := s.products[o.ProductID]; ok {
		cp.Product = *p
	}
	return cp
}
