package product

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/MikeMC777/inventory-service/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product in store order.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, q SearchQuery) ([]Product, error) {
	return s.repo.Search(ctx, q)
}

// UpdateStock overwrites current_inventory verbatim. A stock of 0 is valid;
// only an absent value is rejected.
func (s *Service) UpdateStock(ctx context.Context, productID *int64, stock *int) (*Product, error) {
	if productID == nil || *productID == 0 || stock == nil {
		return nil, apperr.Validation("Missing product_id or stock")
	}
	// current_inventory is a 32-bit column.
	if *stock > math.MaxInt32 || *stock < math.MinInt32 {
		return nil, apperr.Validation("stock out of range")
	}
	p, err := s.repo.UpdateStock(ctx, *productID, *stock)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Product")
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a product. Used by the seed command; there is no HTTP route for it.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.SKU) == "" {
		return apperr.Validation("name and sku are required")
	}
	if p.CurrentInventory > math.MaxInt32 || p.CurrentInventory < math.MinInt32 {
		return apperr.Validation("current_inventory out of range")
	}
	if p.Price.IsNegative() {
		return apperr.Validation("price must be non-negative")
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, ErrDuplicateSKU) {
			return apperr.Validation("sku already exists: " + p.SKU)
		}
		return err
	}
	return nil
}
