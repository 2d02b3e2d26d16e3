package product

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64
	Name        string
	SKU         string
	Category    *string
	Subcategory *string
	// Price is NUMERIC in Postgres; decimal avoids float rounding on the way through.
	Price             decimal.Decimal
	CurrentInventory  int
	WarehouseLocation *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// productJSON is the wire shape of a Product.
// swagger:model Product
type productJSON struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	SKU               string      `json:"sku"`
	Category          *string     `json:"category"`
	Subcategory       *string     `json:"subcategory"`
	Price             json.Number `json:"price"`
	CurrentInventory  int         `json:"current_inventory"`
	WarehouseLocation *string     `json:"warehouse_location"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Category:          p.Category,
		Subcategory:       p.Subcategory,
		Price:             json.Number(p.Price.String()),
		CurrentInventory:  p.CurrentInventory,
		WarehouseLocation: p.WarehouseLocation,
	})
}

func (p *Product) UnmarshalJSON(b []byte) error {
	var in productJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	price := decimal.Zero
	if in.Price != "" {
		d, err := decimal.NewFromString(string(in.Price))
		if err != nil {
			return err
		}
		price = d
	}
	*p = Product{
		ID:                in.ID,
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Subcategory:       in.Subcategory,
		Price:             price,
		CurrentInventory:  in.CurrentInventory,
		WarehouseLocation: in.WarehouseLocation,
	}
	return nil
}

// SearchQuery filters products. Empty fields do not filter.
type SearchQuery struct {
	Keyword     string
	Category    string
	Subcategory string
}

// SearchRequest is the body of POST /api/inventory/search.
// swagger:model SearchRequest
type SearchRequest struct {
	Keyword     string `json:"keyword"     example:"yoga"`
	Category    string `json:"category"    example:"Fitness"`
	Subcategory string `json:"subcategory" example:"Mats"`
}

// UpdateStockRequest is the body of POST /api/inventory/update.
// Pointers keep "absent" apart from a legitimate zero.
// swagger:model UpdateStockRequest
type UpdateStockRequest struct {
	ProductID *int64 `json:"product_id" example:"1"`
	Stock     *int   `json:"stock"      example:"25"`
}

// UpdateStockResponse is returned after a successful stock update.
// swagger:model UpdateStockResponse
type UpdateStockResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
