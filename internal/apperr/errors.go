// Package apperr holds the error taxonomy shared by the services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports missing or invalid input. Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced entity does not exist. Maps to 404.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Entity) }

// InsufficientStockError is returned when an order asks for more units than
// the product has on hand.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string { return "Insufficient stock" }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

func InsufficientStock(available int) error {
	return &InsufficientStockError{Available: available}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsInsufficientStock unwraps err into an InsufficientStockError when possible.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var is *InsufficientStockError
	if errors.As(err, &is) {
		return is, true
	}
	return nil, false
}
