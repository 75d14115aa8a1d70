package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// VoucherQueryUseCase lecturas y edición de líneas de vales de entrada y
// salida. La creación (con mutación de stock) vive en el libro de stock;
// editar o borrar una línea aquí NO reajusta cantidades — comportamiento
// heredado y documentado, no una garantía contable.
type VoucherQueryUseCase struct {
	entryRepo repository.EntryVoucherRepository
	exitRepo  repository.ExitVoucherRepository
}

// NewVoucherQueryUseCase construye el caso de uso.
func NewVoucherQueryUseCase(
	entryRepo repository.EntryVoucherRepository,
	exitRepo repository.ExitVoucherRepository,
) *VoucherQueryUseCase {
	return &VoucherQueryUseCase{entryRepo: entryRepo, exitRepo: exitRepo}
}

// ── Vales de entrada ──────────────────────────────────────────────────────────

// ListEntryVouchers lista encabezados con username, más recientes primero.
func (uc *VoucherQueryUseCase) ListEntryVouchers() ([]*dto.VoucherResponse, error) {
	vouchers, err := uc.entryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, &dto.VoucherResponse{
			ID:       v.ID,
			Date:     v.Date,
			UserID:   v.AddedBy,
			Username: v.AddedByName,
		})
	}
	return out, nil
}

// GetEntryVoucher devuelve el encabezado con sus líneas unidas
// (nombre de artículo, unidad, nombre del trabajador); nil si no existe.
func (uc *VoucherQueryUseCase) GetEntryVoucher(id string) (*dto.VoucherResponse, error) {
	voucher, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, nil
	}
	details, err := uc.entryRepo.ListDetailsByVoucher(id)
	if err != nil {
		return nil, err
	}
	out := &dto.VoucherResponse{
		ID:       voucher.ID,
		Date:     voucher.Date,
		UserID:   voucher.AddedBy,
		Username: voucher.AddedByName,
		Details:  make([]dto.VoucherDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		out.Details = append(out.Details, toEntryDetailResponse(d))
	}
	return out, nil
}

// ListEntryDetails lista todas las líneas de entrada.
func (uc *VoucherQueryUseCase) ListEntryDetails() ([]dto.VoucherDetailResponse, error) {
	details, err := uc.entryRepo.ListDetails()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toEntryDetailResponse(d))
	}
	return out, nil
}

// ListEntryDetailsByVoucher lista las líneas de un vale de entrada.
func (uc *VoucherQueryUseCase) ListEntryDetailsByVoucher(voucherID string) ([]dto.VoucherDetailResponse, error) {
	details, err := uc.entryRepo.ListDetailsByVoucher(voucherID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toEntryDetailResponse(d))
	}
	return out, nil
}

// UpdateEntryDetail edita una línea de entrada sin tocar stock.
func (uc *VoucherQueryUseCase) UpdateEntryDetail(id string, in dto.UpdateDetailRequest) (*dto.VoucherDetailResponse, error) {
	detail, err := uc.entryRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		detail.Quantity = *in.Quantity
	}
	if in.WorkerID != nil {
		detail.WorkerID = *in.WorkerID
	}
	if err := uc.entryRepo.UpdateDetail(detail); err != nil {
		return nil, err
	}
	resp := toEntryDetailResponse(detail)
	return &resp, nil
}

// DeleteEntryDetail elimina una línea de entrada sin tocar stock.
func (uc *VoucherQueryUseCase) DeleteEntryDetail(id string) error {
	return uc.entryRepo.DeleteDetail(id)
}

// ── Vales de salida ───────────────────────────────────────────────────────────

// ListExitVouchers lista encabezados con username, más recientes primero.
func (uc *VoucherQueryUseCase) ListExitVouchers() ([]*dto.VoucherResponse, error) {
	vouchers, err := uc.exitRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, &dto.VoucherResponse{
			ID:       v.ID,
			Date:     v.Date,
			UserID:   v.HandledBy,
			Username: v.HandledByName,
		})
	}
	return out, nil
}

// GetExitVoucher devuelve el encabezado con sus líneas; nil si no existe.
func (uc *VoucherQueryUseCase) GetExitVoucher(id string) (*dto.VoucherResponse, error) {
	voucher, err := uc.exitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, nil
	}
	details, err := uc.exitRepo.ListDetailsByVoucher(id)
	if err != nil {
		return nil, err
	}
	out := &dto.VoucherResponse{
		ID:       voucher.ID,
		Date:     voucher.Date,
		UserID:   voucher.HandledBy,
		Username: voucher.HandledByName,
		Details:  make([]dto.VoucherDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		out.Details = append(out.Details, toExitDetailResponse(d))
	}
	return out, nil
}

// ListExitDetails lista todas las líneas de salida.
func (uc *VoucherQueryUseCase) ListExitDetails() ([]dto.VoucherDetailResponse, error) {
	details, err := uc.exitRepo.ListDetails()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toExitDetailResponse(d))
	}
	return out, nil
}

// ListExitDetailsByVoucher lista las líneas de un vale de salida.
func (uc *VoucherQueryUseCase) ListExitDetailsByVoucher(voucherID string) ([]dto.VoucherDetailResponse, error) {
	details, err := uc.exitRepo.ListDetailsByVoucher(voucherID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toExitDetailResponse(d))
	}
	return out, nil
}

// UpdateExitDetail edita una línea de salida sin tocar stock.
func (uc *VoucherQueryUseCase) UpdateExitDetail(id string, in dto.UpdateDetailRequest) (*dto.VoucherDetailResponse, error) {
	detail, err := uc.exitRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		detail.Quantity = *in.Quantity
	}
	if in.WorkerID != nil {
		detail.WorkerID = *in.WorkerID
	}
	if err := uc.exitRepo.UpdateDetail(detail); err != nil {
		return nil, err
	}
	resp := toExitDetailResponse(detail)
	return &resp, nil
}

// DeleteExitDetail elimina una línea de salida sin tocar stock.
func (uc *VoucherQueryUseCase) DeleteExitDetail(id string) error {
	return uc.exitRepo.DeleteDetail(id)
}

func toEntryDetailResponse(d *entity.EntryDetail) dto.VoucherDetailResponse {
	return dto.VoucherDetailResponse{
		ID:              d.ID,
		VoucherID:       d.VoucherID,
		ItemID:          d.ItemID,
		ItemName:        d.ItemName,
		Unit:            d.Unit,
		WorkerID:        d.WorkerID,
		WorkerFirstName: d.WorkerFirstName,
		WorkerLastName:  d.WorkerLastName,
		Quantity:        d.Quantity,
	}
}

func toExitDetailResponse(d *entity.ExitDetail) dto.VoucherDetailResponse {
	return dto.VoucherDetailResponse{
		ID:              d.ID,
		VoucherID:       d.VoucherID,
		ItemID:          d.ItemID,
		ItemName:        d.ItemName,
		Unit:            d.Unit,
		WorkerID:        d.WorkerID,
		WorkerFirstName: d.WorkerFirstName,
		WorkerLastName:  d.WorkerLastName,
		Quantity:        d.Quantity,
	}
}
