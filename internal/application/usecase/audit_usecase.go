package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AuditUseCase lecturas de la bitácora de stock. Solo lectura: las filas
// las escribe el libro de stock dentro de sus transacciones.
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// ListAll devuelve toda la bitácora, más recientes primero.
func (uc *AuditUseCase) ListAll() ([]*dto.AuditLogResponse, error) {
	logs, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toAuditResponses(logs), nil
}

// ListByItem devuelve la bitácora de un artículo.
func (uc *AuditUseCase) ListByItem(itemID string) ([]*dto.AuditLogResponse, error) {
	logs, err := uc.repo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toAuditResponses(logs), nil
}

// ListByUser devuelve la bitácora de un usuario.
func (uc *AuditUseCase) ListByUser(userID string) ([]*dto.AuditLogResponse, error) {
	logs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toAuditResponses(logs), nil
}

func toAuditResponses(logs []*entity.AuditLog) []*dto.AuditLogResponse {
	out := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.AuditLogResponse{
			ID:             l.ID,
			Action:         l.Action,
			ItemID:         l.ItemID,
			ItemName:       l.ItemName,
			UserID:         l.UserID,
			Username:       l.Username,
			Timestamp:      l.Timestamp,
			QuantityBefore: l.QuantityBefore,
			QuantityAfter:  l.QuantityAfter,
		})
	}
	return out
}
