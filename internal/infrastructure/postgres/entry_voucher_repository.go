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

var _ repository.EntryVoucherRepository = (*EntryVoucherRepo)(nil)

// EntryVoucherRepo implementación de EntryVoucherRepository sobre
// PostgreSQL (usable con pool o tx).
type EntryVoucherRepo struct {
	q Querier
}

// NewEntryVoucherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryVoucherRepository(q Querier) *EntryVoucherRepo {
	return &EntryVoucherRepo{q: q}
}

// Create persiste un encabezado de vale de entrada.
func (r *EntryVoucherRepo) Create(voucher *entity.EntryVoucher) error {
	if voucher.ID == "" {
		voucher.ID = uuid.New().String()
	}
	if voucher.Date.IsZero() {
		voucher.Date = time.Now()
	}
	query := `INSERT INTO entry_vouchers (id, date, added_by) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, voucher.ID, voucher.Date, voucher.AddedBy)
	if err != nil {
		return fmt.Errorf("insert entry voucher: %w", err)
	}
	return nil
}

// GetByID obtiene un encabezado con el username del responsable; nil si no existe.
func (r *EntryVoucherRepo) GetByID(id string) (*entity.EntryVoucher, error) {
	query := `
		SELECT ev.id, ev.date, ev.added_by, u.username
		FROM entry_vouchers ev
		JOIN users u ON ev.added_by = u.id
		WHERE ev.id = $1`
	var v entity.EntryVoucher
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Date, &v.AddedBy, &v.AddedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry voucher: %w", err)
	}
	return &v, nil
}

// List lista encabezados con username, más recientes primero.
func (r *EntryVoucherRepo) List() ([]*entity.EntryVoucher, error) {
	query := `
		SELECT ev.id, ev.date, ev.added_by, u.username
		FROM entry_vouchers ev
		JOIN users u ON ev.added_by = u.id
		ORDER BY ev.date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entry vouchers: %w", err)
	}
	defer rows.Close()
	var list []*entity.EntryVoucher
	for rows.Next() {
		var v entity.EntryVoucher
		if err := rows.Scan(&v.ID, &v.Date, &v.AddedBy, &v.AddedByName); err != nil {
			return nil, fmt.Errorf("scan entry voucher: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CreateDetail persiste una línea de vale de entrada.
func (r *EntryVoucherRepo) CreateDetail(detail *entity.EntryDetail) error {
	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}
	query := `
		INSERT INTO entry_details (id, voucher_id, item_id, worker_id, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.VoucherID, detail.ItemID, detail.WorkerID, detail.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert entry detail: %w", err)
	}
	return nil
}

// GetDetail obtiene una línea por ID; nil si no existe.
func (r *EntryVoucherRepo) GetDetail(id string) (*entity.EntryDetail, error) {
	query := `
		SELECT id, voucher_id, item_id, worker_id, quantity
		FROM entry_details WHERE id = $1`
	var d entity.EntryDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry detail: %w", err)
	}
	return &d, nil
}

// ListDetails lista todas las líneas de entrada.
func (r *EntryVoucherRepo) ListDetails() ([]*entity.EntryDetail, error) {
	query := `SELECT id, voucher_id, item_id, worker_id, quantity FROM entry_details`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entry details: %w", err)
	}
	defer rows.Close()
	var list []*entity.EntryDetail
	for rows.Next() {
		var d entity.EntryDetail
		if err := rows.Scan(&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan entry detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListDetailsByVoucher lista las líneas de un vale con nombre de artículo,
// unidad y nombre del trabajador. LEFT JOIN a stock_items: el artículo pudo
// haberse eliminado al llegar a cero y la línea histórica debe seguir viva.
func (r *EntryVoucherRepo) ListDetailsByVoucher(voucherID string) ([]*entity.EntryDetail, error) {
	query := `
		SELECT ed.id, ed.voucher_id, ed.item_id, ed.worker_id, ed.quantity,
		       COALESCE(si.name, ''), COALESCE(si.unit, ''),
		       w.first_name, w.last_name
		FROM entry_details ed
		LEFT JOIN stock_items si ON ed.item_id = si.id
		JOIN workers w ON ed.worker_id = w.id
		WHERE ed.voucher_id = $1`
	rows, err := r.q.Query(context.Background(), query, voucherID)
	if err != nil {
		return nil, fmt.Errorf("list entry details by voucher: %w", err)
	}
	defer rows.Close()
	var list []*entity.EntryDetail
	for rows.Next() {
		var d entity.EntryDetail
		if err := rows.Scan(&d.ID, &d.VoucherID, &d.ItemID, &d.WorkerID, &d.Quantity,
			&d.ItemName, &d.Unit, &d.WorkerFirstName, &d.WorkerLastName); err != nil {
			return nil, fmt.Errorf("scan entry detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateDetail actualiza cantidad y trabajador de una línea. No toca stock.
func (r *EntryVoucherRepo) UpdateDetail(detail *entity.EntryDetail) error {
	query := `UPDATE entry_details SET quantity = $2, worker_id = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, detail.ID, detail.Quantity, detail.WorkerID)
	if err != nil {
		return fmt.Errorf("update entry detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetail elimina una línea. No toca stock.
func (r *EntryVoucherRepo) DeleteDetail(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM entry_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entry detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
