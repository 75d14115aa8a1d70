package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository sobre PostgreSQL.
// La bitácora es de solo inserción: nunca se actualiza ni se borra.
type AuditLogRepo struct {
	q Querier
}

func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste un registro de auditoría.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	query := `
		INSERT INTO audit_logs (id, action, item_id, user_id, timestamp, quantity_before, quantity_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Action, log.ItemID, log.UserID, log.Timestamp,
		log.QuantityBefore, log.QuantityAfter,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

const auditSelect = `
	SELECT al.id, al.action, al.item_id, al.user_id, al.timestamp,
	       al.quantity_before, al.quantity_after,
	       COALESCE(si.name, ''), u.username
	FROM audit_logs al
	LEFT JOIN stock_items si ON al.item_id = si.id
	JOIN users u ON al.user_id = u.id`

// ListAll lista toda la bitácora, más reciente primero.
func (r *AuditLogRepo) ListAll() ([]*entity.AuditLog, error) {
	return r.list(auditSelect + ` ORDER BY al.timestamp DESC`)
}

// ListByItem lista la bitácora de un artículo.
func (r *AuditLogRepo) ListByItem(itemID string) ([]*entity.AuditLog, error) {
	return r.list(auditSelect+` WHERE al.item_id = $1 ORDER BY al.timestamp DESC`, itemID)
}

// ListByUser lista la bitácora de un usuario.
func (r *AuditLogRepo) ListByUser(userID string) ([]*entity.AuditLog, error) {
	return r.list(auditSelect+` WHERE al.user_id = $1 ORDER BY al.timestamp DESC`, userID)
}

func (r *AuditLogRepo) list(query string, args ...any) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.Action, &l.ItemID, &l.UserID, &l.Timestamp,
			&l.QuantityBefore, &l.QuantityAfter, &l.ItemName, &l.Username); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
