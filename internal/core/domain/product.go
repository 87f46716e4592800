package domain

import "errors"

var ErrProductNotFound = errors.New("product not found or inactive")

// Product is a catalog item orders reference. The catalog is read-only
// through this API; stock levels are maintained elsewhere.
type Product struct {
	ID            int64   `json:"product_id"`
	Name          string  `json:"product_name"`
	Description   string  `json:"product_description,omitempty"`
	Category      string  `json:"category"`
	UnitPrice     float64 `json:"unit_price"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	Status        string  `json:"status"`
}
