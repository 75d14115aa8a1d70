package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que un vale con N líneas se
// confirma completo o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		entryRepo repository.EntryVoucherRepository,
		exitRepo repository.ExitVoucherRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}

// VoucherPDFGenerator genera la representación imprimible de un vale
// (para firma en patio). Implementado en infrastructure/pdf con Maroto.
type VoucherPDFGenerator interface {
	GenerateVoucherPDF(ctx context.Context, doc *VoucherDocument) ([]byte, error)
}

// VoucherDocument datos ya resueltos para imprimir un vale.
type VoucherDocument struct {
	Kind     string // entry | exit
	ID       string
	Date     string
	Username string
	Lines    []VoucherDocumentLine
}

// VoucherDocumentLine una línea de la tabla del PDF.
type VoucherDocumentLine struct {
	ItemName   string
	Unit       string
	WorkerName string
	Quantity   int64
}
