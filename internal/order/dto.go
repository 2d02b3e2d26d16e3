package order

// CreateOrderRequest payload for order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	ProductID *int64 `json:"product_id" example:"1"`
	Quantity  *int   `json:"quantity"   example:"2"`
}

// UpdateStatusRequest payload for a status change. Any non-empty text is accepted.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Shipped"`
}

// OrderResponse wraps a mutated order with a human readable message.
// swagger:model OrderResponse
type OrderResponse struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}
