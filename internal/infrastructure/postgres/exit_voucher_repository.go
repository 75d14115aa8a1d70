package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ExitVoucherRepository = (*ExitVoucherRepo)(nil)

// ExitVoucherRepo implementación de ExitVoucherRepository sobre PostgreSQL.
type ExitVoucherRepo struct {
	q Querier
}

func NewExitVoucherRepository(q Querier) *ExitVoucherRepo {
	return &ExitVoucherRepo{q: q}
}

// Create persiste un encabezado de vale de salida.
func (r *ExitVoucherRepo) Create(voucher *entity.ExitVoucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	if voucher.Date.IsZero() {
		voucher.Date = time.Now()
	}
	query := `INSERT INTO exit_vouchers (id, date, handled_by) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, voucher.ID, voucher.Date, voucher.HandledBy)
	if err != nil {
		return fmt.Errorf("insert exit voucher: %w", err)
	}
	return nil
}

// GetByID obtiene un encabezado con el username del responsable; nil si no existe.
func (r *ExitVoucherRepo) GetByID(id string) (*entity.ExitVoucher, error) {
	query := `
		SELECT xv.id, xv.date, xv.handled_by, u.username
		FROM exit_vouchers xv
		JOIN users u ON xv.handled_by = u.id
		WHERE xv.id = $1`
	var v entity.ExitVoucher
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Date, &v.HandledBy, &v.HandledByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit voucher: %w", err)
	}
	return &v, nil
}

// List lista encabezados con username, más recientes primero.
func (r *ExitVoucherRepo) List() ([]*entity.ExitVoucher, error) {
	query := `
		SELECT xv.id, xv.date, xv.handled_by, u.username
		FROM exit_vouchers xv
		JOIN users u ON xv.handled_by = u.id
		ORDER BY xv.date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list exit vouchers: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExitVoucher
	for rows.Next() {
		var v entity.ExitVoucher
		if err := rows.Scan(&v.ID, &v.Date, &v.HandledBy, &v.HandledByName); err != nil {
			return nil, fmt.Errorf("scan exit voucher: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CreateDetail persiste una línea de vale de salida.
func (r *ExitVoucherRepo) CreateDetail(detail *entity.ExitDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO exit_details (id, voucher_id, item_id, worker_id, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.VoucherID, detail.ItemID, detail.WorkerID, detail.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert exit detail: %w", err)
	}
	return nil
}

// GetDetail obtiene una línea por ID; nil si no existe.
func (r *ExitVoucherRepo) GetDetail(id string) (*entity.ExitDetail, error) {
	query := `
		SELECT id, voucher_id, item_id, worker_id, quantity
		FROM exit_details WHERE id = $1`
	var d entity.ExitDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit detail: %w", err)
	}
	return &d, nil
}

// ListDetails lista todas las líneas de salida.
func (r *ExitVoucherRepo) ListDetails() ([]*entity.ExitDetail, error) {
	query := `SELECT id, voucher_id, item_id, worker_id, quantity FROM exit_details`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list exit details: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExitDetail
	for rows.Next() {
		var d entity.ExitDetail
		if err := rows.Scan(&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan exit detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListDetailsByVoucher lista las líneas de un vale con datos de artículo y
// trabajador. LEFT JOIN a stock_items por los artículos eliminados en cero.
func (r *ExitVoucherRepo) ListDetailsByVoucher(voucherID string) ([]*entity.ExitDetail, error) {
	query := `
		SELECT xd.id, xd.voucher_id, xd.item_id, xd.worker_id, xd.quantity,
		       COALESCE(si.name, ''), COALESCE(si.unit, ''),
		       w.first_name, w.last_name
		FROM exit_details xd
		LEFT JOIN stock_items si ON xd.item_id = si.id
		JOIN workers w ON xd.worker_id = w.id
		WHERE xd.voucher_id = $1`
	rows, err := r.q.Query(context.Background(), query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("list exit details by voucher: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExitDetail
	for rows.Next() {
		var d entity.ExitDetail
		if err := rows.Scan(&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity,
			&d.ItemName, &d.Unit, &d.WorkerFirstName, &d.WorkerLastName); err != nil {
			return nil, fmt.Errorf("scan exit detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateDetail actualiza cantidad y trabajador de una línea. No toca stock.
func (r *ExitVoucherRepo) UpdateDetail(detail *entity.ExitDetail) error {
	query := `UPDATE exit_details SET quantity = $2, worker_id = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, detail.ID, detail.Quantity, detail.WorkerID)
	if err != nil {
		return fmt.Errorf("update exit detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetail elimina una línea. No toca stock.
func (r *ExitVoucherRepo) DeleteDetail(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM exit_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exit detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
