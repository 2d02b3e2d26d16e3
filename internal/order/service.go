package order

import (
	"context"
	"errors"

	"github.com/MikeMC777/inventory-service/internal/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

// Create places a Pending order and takes quantity units out of the
// product's inventory. Quantity must be a positive integer.
func (s *Service) Create(ctx context.Context, productID *int64, quantity *int) (*Order, error) {
	if productID == nil || *productID == 0 || quantity == nil || *quantity == 0 {
		return nil, apperr.Validation("Missing product_id or quantity")
	}
	if *quantity < 0 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}
	o, err := s.repo.Create(ctx, *productID, *quantity)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

// UpdateStatus stores status verbatim; any non-empty value may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	if status == "" {
		return nil, apperr.Validation("Missing status")
	}
	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

func notFound(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.NotFound("Order")
	case errors.Is(err, ErrProductNotFound):
		return apperr.NotFound("Product")
	default:
		return err
	}
}
