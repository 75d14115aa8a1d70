package entity

import "time"

// StockItem representa un artículo del almacén con su cantidad actual.
// Name es la clave de negocio (única). La fila se elimina cuando una salida
// deja la cantidad en cero: la ausencia de fila significa "sin stock".
type StockItem struct {
	ID        string
	Name      string
	Quantity  int64 // siempre >= 0
	Unit      string
	Notes     string
	CreatedAt time.Time
}
