package dto

import "time"

// CreateStockItemRequest body para POST /api/stock-items.
type CreateStockItemRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
	Notes    string `json:"notes"`
}

// UpdateStockItemRequest body para PUT /api/stock-items/:id.
type UpdateStockItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Quantity *int64  `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// SetQuantityRequest body para PUT /api/stock-items/:id/quantity.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// StockItemResponse representación JSON de un artículo en stock.
type StockItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int64     `json:"quantity"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
