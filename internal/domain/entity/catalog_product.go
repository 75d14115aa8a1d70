package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct es una entrada del catálogo de productos: nombres y valores
// por defecto que el asistente de vales usa para autocompletar. No guarda
// cantidades; el stock vive en StockItem.
type CatalogProduct struct {
	ID           string
	Name         string
	DefaultUnit  string
	DefaultPrice decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}
