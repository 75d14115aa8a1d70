package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// VoucherPDFUseCase genera la versión imprimible de un vale (el patio la
// firma en papel). Resuelve encabezado, usuario responsable y líneas con
// nombres ya unidos, y delega el render al generador.
type VoucherPDFUseCase struct {
	entryRepo repository.EntryVoucherRepository
	exitRepo  repository.ExitVoucherRepository
	userRepo  repository.UserRepository
	generator VoucherPDFGenerator
}

// NewVoucherPDFUseCase construye el caso de uso.
func NewVoucherPDFUseCase(
	entryRepo repository.EntryVoucherRepository,
	exitRepo repository.ExitVoucherRepository,
	userRepo repository.UserRepository,
	generator VoucherPDFGenerator,
) *VoucherPDFUseCase {
	return &VoucherPDFUseCase{
		entryRepo: entryRepo,
		exitRepo:  exitRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// DownloadEntryVoucherPDF genera el PDF de un vale de entrada.
// Retorna (bytes, filename, error); domain.ErrNotFound si el vale no existe.
func (uc *VoucherPDFUseCase) DownloadEntryVoucherPDF(ctx context.Context, voucherID string) ([]byte, string, error) {
	voucher, err := uc.entryRepo.GetByID(voucherID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vale de entrada: %w", err)
	}
	if voucher == nil {
		return nil, "", domain.ErrNotFound
	}
	details, err := uc.entryRepo.ListDetailsByVoucher(voucherID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	doc := &VoucherDocument{
		Kind:     entity.AuditActionEntry,
		ID:       voucher.ID,
		Date:     voucher.Date.Format("02/01/2006 15:04"),
		Username: uc.resolveUsername(voucher.AddedBy),
	}
	for _, d := range details {
		doc.Lines = append(doc.Lines, VoucherDocumentLine{
			ItemName:   fallbackName(d.ItemName),
			Unit:       d.Unit,
			WorkerName: d.WorkerFirstName + " " + d.WorkerLastName,
			Quantity:   d.Quantity,
		})
	}

	pdfBytes, err := uc.generator.GenerateVoucherPDF(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "vale-entrada-" + voucher.ID + ".pdf", nil
}

// DownloadExitVoucherPDF genera el PDF de un vale de salida.
func (uc *VoucherPDFUseCase) DownloadExitVoucherPDF(ctx context.Context, voucherID string) ([]byte, string, error) {
	voucher, err := uc.exitRepo.GetByID(voucherID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener vale de salida: %w", err)
	}
	if voucher == nil {
		return nil, "", domain.ErrNotFound
	}
	details, err := uc.exitRepo.ListDetailsByVoucher(voucherID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	doc := &VoucherDocument{
		Kind:     entity.AuditActionExit,
		ID:       voucher.ID,
		Date:     voucher.Date.Format("02/01/2006 15:04"),
		Username: uc.resolveUsername(voucher.HandledBy),
	}
	for _, d := range details {
		doc.Lines = append(doc.Lines, VoucherDocumentLine{
			ItemName:   fallbackName(d.ItemName),
			Unit:       d.Unit,
			WorkerName: d.WorkerFirstName + " " + d.WorkerLastName,
			Quantity:   d.Quantity,
		})
	}

	pdfBytes, err := uc.generator.GenerateVoucherPDF(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "vale-salida-" + voucher.ID + ".pdf", nil
}

func (uc *VoucherPDFUseCase) resolveUsername(userID string) string {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return userID
	}
	return user.Username
}

// fallbackName cubre artículos eliminados al llegar a cero: la línea
// histórica sigue imprimiéndose aunque el artículo ya no exista.
func fallbackName(name string) string {
	if name == "" {
		return "(artículo eliminado)"
	}
	return name
}
