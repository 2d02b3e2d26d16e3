package order

import (
	"encoding/json"
	"time"

	"github.com/MikeMC777/inventory-service/internal/product"
)

const StatusPending = "Pending"

type Order struct {
	ID        int64
	ProductID int64
	Product   product.Product
	Quantity  int
	Status    string // free text, no transition rules
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID        int64           `json:"id"`
		Product   product.Product `json:"product"`
		Quantity  int             `json:"quantity"`
		Status    string          `json:"status"`
		CreatedAt string          `json:"created_at"`
	}{
		ID:        o.ID,
		Product:   o.Product,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}
