package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// AuditLogRepository define el puerto de la bitácora. Create se invoca
// únicamente desde el libro de stock, dentro de su transacción; el resto
// son lecturas (más recientes primero, con join a item y usuario).
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	ListAll() ([]*entity.AuditLog, error)
	ListByItem(itemID string) ([]*entity.AuditLog, error)
	ListByUser(userID string) ([]*entity.AuditLog, error)
}
