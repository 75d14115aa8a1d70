package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCatalogProductRequest body para POST /api/product-catalog.
type CreateCatalogProductRequest struct {
	Name         string          `json:"name"`
	DefaultUnit  string          `json:"default_unit"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Notes        string          `json:"notes"`
}

// UpdateCatalogProductRequest body para PUT /api/product-catalog/:id.
type UpdateCatalogProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	DefaultUnit  *string          `json:"default_unit,omitempty"`
	DefaultPrice *decimal.Decimal `json:"default_price,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// CatalogProductResponse representación JSON de un producto del catálogo.
type CatalogProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DefaultUnit  string          `json:"default_unit"`
	DefaultPrice decimal.Decimal `json:"default_price"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
