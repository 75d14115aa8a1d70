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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL.
// default_price es NUMERIC; el codec de shopspring/decimal se registra en el pool.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Create agrega un producto al catálogo.
func (r *CatalogRepo) Create(product *entity.CatalogProduct) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO product_catalog (id, name, default_unit, default_price, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.DefaultUnit, product.DefaultPrice, product.Notes, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert catalog product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del catálogo; nil si no existe.
func (r *CatalogRepo) GetByID(id string) (*entity.CatalogProduct, error) {
	query := `
		SELECT id, name, default_unit, default_price, notes, created_at
		FROM product_catalog WHERE id = $1`
	var p entity.CatalogProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.DefaultUnit, &p.DefaultPrice, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog product: %w", err)
	}
	return &p, nil
}

// List lista productos del catálogo ordenados por nombre, acotado por limit.
func (r *CatalogRepo) List(search string, limit int) ([]*entity.CatalogProduct, error) {
	query := `SELECT id, name, default_unit, default_price, notes, created_at FROM product_catalog`
	args := []any{}
	pos := 1
	if search != "" {
		query += fmt.Sprintf(` WHERE name ILIKE $%d`, pos)
		args = append(args, "%"+search+"%")
		pos++
	}
	query += fmt.Sprintf(` ORDER BY name LIMIT $%d`, pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.DefaultUnit, &p.DefaultPrice, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto del catálogo.
func (r *CatalogRepo) Update(product *entity.CatalogProduct) error {
	query := `
		UPDATE product_catalog SET name = $2, default_unit = $3, default_price = $4, notes = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.DefaultUnit, product.DefaultPrice, product.Notes,
	)
	if err != nil {
		return fmt.Errorf("update catalog product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto del catálogo por ID.
func (r *CatalogRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM product_catalog WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete catalog product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
