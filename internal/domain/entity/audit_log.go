package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AuditActionEntry = "entry" // entrada de mercancía
	AuditActionExit  = "exit"  // salida de mercancía
)

// AuditLog es un registro inmutable de un cambio de cantidad en stock.
// Solo el libro de stock escribe filas; nunca se actualizan ni eliminan.
type AuditLog struct {
	ID             string
	Action         string // entry | exit
	ItemID         string
	UserID         string
	Timestamp      time.Time
	QuantityBefore int64
	QuantityAfter  int64

	// Campos de lectura (join). ItemName queda vacío si el artículo fue
	// eliminado al llegar a cero.
	ItemName string
	Username string
}
