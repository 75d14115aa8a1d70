package dto

import "time"

// AuditLogResponse fila de bitácora con item y usuario resueltos.
// ItemName puede venir vacío si el artículo fue eliminado al llegar a cero.
type AuditLogResponse struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name,omitempty"`
	UserID         string    `json:"user_id"`
	Username       string    `json:"username,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityAfter  int64     `json:"quantity_after"`
}
