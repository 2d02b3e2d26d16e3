package product

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductJSON(t *testing.T) {
	cat := "Fitness"
	p := Product{
		ID:               7,
		Name:             "Yoga Mat",
		SKU:              "FIT-001",
		Category:         &cat,
		Price:            decimal.RequireFromString("25.50"),
		CurrentInventory: 10,
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"name": "Yoga Mat",
		"sku": "FIT-001",
		"category": "Fitness",
		"subcategory": null,
		"price": 25.5,
		"current_inventory": 10,
		"warehouse_location": null
	}`, string(b))
}

func TestProductJSON_Decode(t *testing.T) {
	var items []Product
	err := json.Unmarshal([]byte(`[
		{"name": "Mug", "sku": "KIT-001", "price": 7.25, "current_inventory": 3, "warehouse_location": "A-1"},
		{"name": "Free", "sku": "KIT-002"}
	]`), &items)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("7.25")))
	require.NotNil(t, items[0].WarehouseLocation)
	assert.Equal(t, "A-1", *items[0].WarehouseLocation)
	assert.Nil(t, items[0].Category)
	assert.True(t, items[1].Price.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"price": "abc"}`), &Product{}))
}
