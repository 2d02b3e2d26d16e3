package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/inventory-service/internal/product"
)

func TestOrderJSON(t *testing.T) {
	o := Order{
		ID:        3,
		ProductID: 1,
		Product:   product.Product{ID: 1, Name: "Yoga Mat", SKU: "FIT-001", Price: decimal.RequireFromString("25.5"), CurrentInventory: 8},
		Quantity:  2,
		Status:    StatusPending,
		CreatedAt: time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("CEST", 2*3600)),
	}
	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3,
		"product": {
			"id": 1, "name": "Yoga Mat", "sku": "FIT-001", "category": null, "subcategory": null,
			"price": 25.5, "current_inventory": 8, "warehouse_location": null
		},
		"quantity": 2,
		"status": "Pending",
		"created_at": "2024-05-01T12:30:00Z"
	}`, string(b))
}

func TestOrderJSON_CreatedAtKeepsSubSeconds(t *testing.T) {
	o := Order{CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 123456000, time.UTC)}
	b, err := json.Marshal(o)
	require.NoError(t, err)

	var got struct {
		CreatedAt string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "2024-05-01T12:30:00.123456Z", got.CreatedAt)
}
