package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/inventory-service/internal/apperr"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Order not found
	Error string `json:"error"`
}

// StockError is the 400 body for an order that exceeds available stock.
// swagger:model
type StockError struct {
	Error     string `json:"error"`
	Available int    `json:"available"`
}

// RespondError translates a service error into a status code and JSON body.
// Unclassified errors become a 500 and are attached to the context for the logger.
func RespondError(c *gin.Context, err error) {
	if is, ok := apperr.AsInsufficientStock(err); ok {
		c.JSON(http.StatusBadRequest, StockError{Error: is.Error(), Available: is.Available})
		return
	}
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, HTTPError{Error: err.Error()})
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, HTTPError{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, HTTPError{Error: "internal server error"})
	}
}
