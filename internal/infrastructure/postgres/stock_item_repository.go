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

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un nuevo artículo. Genera el ID si viene vacío.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO stock_items (id, name, quantity, unit, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.Unit, item.Notes, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.get(`SELECT id, name, quantity, unit, notes, created_at
		FROM stock_items WHERE id = $1`, id)
}

// GetByName obtiene un artículo por nombre exacto; nil si no existe.
func (r *StockItemRepo) GetByName(name string) (*entity.StockItem, error) {
	return r.get(`SELECT id, name, quantity, unit, notes, created_at
		FROM stock_items WHERE name = $1`, name)
}

// GetForUpdate obtiene y bloquea la fila (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.get(`SELECT id, name, quantity, unit, notes, created_at
		FROM stock_items WHERE id = $1
		FOR UPDATE`, id)
}

// GetByNameForUpdate obtiene y bloquea la fila por nombre exacto.
func (r *StockItemRepo) GetByNameForUpdate(name string) (*entity.StockItem, error) {
	return r.get(`SELECT id, name, quantity, unit, notes, created_at
		FROM stock_items WHERE name = $1
		FOR UPDATE`, name)
}

func (r *StockItemRepo) get(query string, arg any) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.Notes, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

// List lista artículos ordenados por nombre; search filtra por subcadena.
func (r *StockItemRepo) List(search string) ([]*entity.StockItem, error) {
	query := `SELECT id, name, quantity, unit, notes, created_at FROM stock_items`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.Notes, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update actualiza nombre, cantidad, unidad y notas de un artículo.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items SET name = $2, quantity = $3, unit = $4, notes = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.Unit, item.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetQuantity fija la cantidad en un valor absoluto.
func (r *StockItemRepo) SetQuantity(id string, quantity int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("set stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddQuantity suma delta a la cantidad actual.
func (r *StockItemRepo) AddQuantity(id string, delta int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET quantity = quantity + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("add stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementIfAvailable resta quantity solo si la fila existe y alcanza;
// el WHERE condicional cierra la carrera check-then-act y el resultado se
// decide por filas afectadas.
func (r *StockItemRepo) DecrementIfAvailable(id string, quantity int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET quantity = quantity - $2
		 WHERE id = $1 AND quantity >= $2`, id, quantity)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete elimina un artículo por ID.
func (r *StockItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
