package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockLedgerUseCase es el libro de stock: toda mutación de cantidades pasa
// por aquí. Crea vales de entrada/salida con sus líneas de forma
// transaccional (commit completo o rollback completo), con bloqueo de fila
// (SELECT FOR UPDATE) más decremento condicional en salidas, y escribe una
// fila de bitácora por cada línea aplicada.
type StockLedgerUseCase struct {
	txRunner   TxRunner
	userRepo   repository.UserRepository
	workerRepo repository.WorkerRepository
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	workerRepo repository.WorkerRepository,
) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:   txRunner,
		userRepo:   userRepo,
		workerRepo: workerRepo,
	}
}

// CreateEntryVoucher crea un vale de entrada con todas sus líneas en una
// sola transacción. Por cada línea: upsert del artículo (por nombre, o
// bloqueo por id si ya se conoce), incremento de cantidad, inserción de la
// línea y fila de bitácora 'entry'. Cualquier falla revierte el vale entero.
func (uc *StockLedgerUseCase) CreateEntryVoucher(ctx context.Context, in dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	user, err := uc.validateHeader(in)
	if err != nil {
		return nil, err
	}
	for _, line := range in.Details {
		if line.ItemID == "" && line.ItemName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	voucher := &entity.EntryVoucher{Date: now, AddedBy: in.UserID}
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		entryRepo repository.EntryVoucherRepository,
		_ repository.ExitVoucherRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := entryRepo.Create(voucher); err != nil {
			return err
		}
		for _, line := range in.Details {
			if _, err := uc.applyEntryLine(stockRepo, entryRepo, auditRepo, voucher.ID, in.UserID, line, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.VoucherResponse{
		ID:       voucher.ID,
		Date:     voucher.Date,
		UserID:   voucher.AddedBy,
		Username: user.Username,
	}, nil
}

// CreateExitVoucher crea un vale de salida con todas sus líneas en una sola
// transacción. Por cada línea: bloqueo de fila, rechazo con
// InsufficientStockError si no alcanza, decremento condicional verificado
// por filas afectadas, línea, bitácora 'exit' y eliminación del artículo si
// quedó en cero. Cualquier falla (p.ej. stock insuficiente en la línea 3 de
// 5) revierte el vale entero.
func (uc *StockLedgerUseCase) CreateExitVoucher(ctx context.Context, in dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	user, err := uc.validateHeader(in)
	if err != nil {
		return nil, err
	}
	for _, line := range in.Details {
		if line.ItemID == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	voucher := &entity.ExitVoucher{Date: now, HandledBy: in.UserID}
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		_ repository.EntryVoucherRepository,
		exitRepo repository.ExitVoucherRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := exitRepo.Create(voucher); err != nil {
			return err
		}
		for _, line := range in.Details {
			if _, err := uc.applyExitLine(stockRepo, exitRepo, auditRepo, voucher.ID, in.UserID, line, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.VoucherResponse{
		ID:       voucher.ID,
		Date:     voucher.Date,
		UserID:   voucher.HandledBy,
		Username: user.Username,
	}, nil
}

// AppendEntryDetail agrega una línea a un vale de entrada existente,
// aplicando la misma mutación de stock que el asistente (transaccional).
func (uc *StockLedgerUseCase) AppendEntryDetail(ctx context.Context, in dto.AppendDetailRequest) (*dto.VoucherDetailResponse, error) {
	line, err := uc.validateAppend(in)
	if err != nil {
		return nil, err
	}
	if in.ItemID == "" && in.ItemName == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var detail *entity.EntryDetail
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		entryRepo repository.EntryVoucherRepository,
		_ repository.ExitVoucherRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		voucher, err := entryRepo.GetByID(in.VoucherID)
		if err != nil {
			return err
		}
		if voucher == nil {
			return domain.ErrNotFound
		}
		detail, err = uc.applyEntryLine(stockRepo, entryRepo, auditRepo, in.VoucherID, in.UserID, line, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.VoucherDetailResponse{
		ID:        detail.ID,
		VoucherID: detail.VoucherID,
		ItemID:    detail.ItemID,
		WorkerID:  detail.WorkerID,
		Quantity:  detail.Quantity,
	}, nil
}

// AppendExitDetail agrega una línea a un vale de salida existente.
func (uc *StockLedgerUseCase) AppendExitDetail(ctx context.Context, in dto.AppendDetailRequest) (*dto.VoucherDetailResponse, error) {
	line, err := uc.validateAppend(in)
	if err != nil {
		return nil, err
	}
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var detail *entity.ExitDetail
	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		_ repository.EntryVoucherRepository,
		exitRepo repository.ExitVoucherRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		voucher, err := exitRepo.GetByID(in.VoucherID)
		if err != nil {
			return err
		}
		if voucher == nil {
			return domain.ErrNotFound
		}
		detail, err = uc.applyExitLine(stockRepo, exitRepo, auditRepo, in.VoucherID, in.UserID, line, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.VoucherDetailResponse{
		ID:        detail.ID,
		VoucherID: detail.VoucherID,
		ItemID:    detail.ItemID,
		WorkerID:  detail.WorkerID,
		Quantity:  detail.Quantity,
	}, nil
}

// validateHeader valida usuario responsable y líneas (cantidad positiva,
// trabajador existente). El usuario y los trabajadores se resuelven antes
// de abrir la transacción.
func (uc *StockLedgerUseCase) validateHeader(in dto.CreateVoucherRequest) (*entity.User, error) {
	if in.UserID == "" || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	seen := make(map[string]bool)
	for _, line := range in.Details {
		if line.Quantity <= 0 || line.WorkerID == "" {
			return nil, domain.ErrInvalidInput
		}
		if seen[line.WorkerID] {
			continue
		}
		worker, err := uc.workerRepo.GetByID(line.WorkerID)
		if err != nil {
			return nil, err
		}
		if worker == nil {
			return nil, domain.ErrNotFound
		}
		seen[line.WorkerID] = true
	}
	return user, nil
}

func (uc *StockLedgerUseCase) validateAppend(in dto.AppendDetailRequest) (dto.VoucherLineRequest, error) {
	line := dto.VoucherLineRequest{
		ItemID:   in.ItemID,
		ItemName: in.ItemName,
		Unit:     in.Unit,
		Notes:    in.Notes,
		WorkerID: in.WorkerID,
		Quantity: in.Quantity,
	}
	if in.VoucherID == "" || in.UserID == "" || in.WorkerID == "" || in.Quantity <= 0 {
		return line, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return line, err
	}
	if user == nil {
		return line, domain.ErrNotFound
	}
	worker, err := uc.workerRepo.GetByID(in.WorkerID)
	if err != nil {
		return line, err
	}
	if worker == nil {
		return line, domain.ErrNotFound
	}
	return line, nil
}

// applyEntryLine aplica una línea de entrada dentro de la transacción:
// resuelve el artículo (bloqueo por id, o upsert por nombre exacto con
// sobreescritura opcional de unit/notes), suma la cantidad, inserta la
// línea y la fila de bitácora con before/after.
func (uc *StockLedgerUseCase) applyEntryLine(
	stockRepo repository.StockItemRepository,
	entryRepo repository.EntryVoucherRepository,
	auditRepo repository.AuditLogRepository,
	voucherID, userID string,
	line dto.VoucherLineRequest,
	now time.Time,
) (*entity.EntryDetail, error) {
	var item *entity.StockItem
	if line.ItemID != "" {
		found, err := stockRepo.GetForUpdate(line.ItemID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, domain.ErrNotFound
		}
		item = found
	} else {
		found, err := stockRepo.GetByNameForUpdate(line.ItemName)
		if err != nil {
			return nil, err
		}
		if found == nil {
			unit := line.Unit
			if unit == "" {
				unit = "pcs"
			}
			found = &entity.StockItem{
				Name:      line.ItemName,
				Quantity:  0,
				Unit:      unit,
				Notes:     line.Notes,
				CreatedAt: now,
			}
			if err := stockRepo.Create(found); err != nil {
				return nil, err
			}
		} else if line.Unit != "" || line.Notes != "" {
			if line.Unit != "" {
				found.Unit = line.Unit
			}
			if line.Notes != "" {
				found.Notes = line.Notes
			}
			if err := stockRepo.Update(found); err != nil {
				return nil, err
			}
		}
		item = found
	}

	before := item.Quantity
	if err := stockRepo.AddQuantity(item.ID, line.Quantity); err != nil {
		return nil, err
	}

	detail := &entity.EntryDetail{
		VoucherID: voucherID,
		ItemID:    item.ID,
		WorkerID:  line.WorkerID,
		Quantity:  line.Quantity,
	}
	if err := entryRepo.CreateDetail(detail); err != nil {
		return nil, err
	}

	return detail, auditRepo.Create(&entity.AuditLog{
		Action:         entity.AuditActionEntry,
		ItemID:         item.ID,
		UserID:         userID,
		Timestamp:      now,
		QuantityBefore: before,
		QuantityAfter:  before + line.Quantity,
	})
}

// applyExitLine aplica una línea de salida dentro de la transacción:
// bloquea la fila, verifica disponibilidad, decrementa de forma condicional
// (filas afectadas cierran la carrera check-then-act), inserta línea y
// bitácora, y elimina el artículo si la cantidad quedó en cero.
func (uc *StockLedgerUseCase) applyExitLine(
	stockRepo repository.StockItemRepository,
	exitRepo repository.ExitVoucherRepository,
	auditRepo repository.AuditLogRepository,
	voucherID, userID string,
	line dto.VoucherLineRequest,
	now time.Time,
) (*entity.ExitDetail, error) {
	item, err := stockRepo.GetForUpdate(line.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.Quantity < line.Quantity {
		return nil, &domain.InsufficientStockError{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Available: item.Quantity,
			Requested: line.Quantity,
		}
	}

	ok, err := stockRepo.DecrementIfAvailable(item.ID, line.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Con la fila bloqueada no debería ocurrir; si ocurre, el rechazo
		// mantiene el invariante de cantidad no negativa.
		return nil, &domain.InsufficientStockError{
			ItemID:    item.ID,
			ItemName:  item.Name,
			Available: item.Quantity,
			Requested: line.Quantity,
		}
	}
	after := item.Quantity - line.Quantity

	detail := &entity.ExitDetail{
		VoucherID: voucherID,
		ItemID:    item.ID,
		WorkerID:  line.WorkerID,
		Quantity:  line.Quantity,
	}
	if err := exitRepo.CreateDetail(detail); err != nil {
		return nil, err
	}
	if err := auditRepo.Create(&entity.AuditLog{
		Action:         entity.AuditActionExit,
		ItemID:         item.ID,
		UserID:         userID,
		Timestamp:      now,
		QuantityBefore: item.Quantity,
		QuantityAfter:  after,
	}); err != nil {
		return nil, err
	}

	// Política del almacén: sin stock = sin fila. Se elimina el artículo al
	// llegar a cero en lugar de dejarlo con cantidad 0.
	if after <= 0 {
		if err := stockRepo.Delete(item.ID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}
