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

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación de WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	if worker.ID == "" {
		worker.ID = uuid.New().String()
	}
	if worker.CreatedAt.IsZero() {
		worker.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO workers (id, first_name, last_name, national_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.NationalID, worker.Role, worker.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID; nil si no existe.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `
		SELECT id, first_name, last_name, national_id, role, created_at
		FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.FirstName, &w.LastName, &w.NationalID, &w.Role, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// List lista trabajadores ordenados por nombre y apellido.
func (r *WorkerRepo) List(search string) ([]*entity.Worker, error) {
	query := `SELECT id, first_name, last_name, national_id, role, created_at FROM workers`
	args := []any{}
	if search != "" {
		query += ` WHERE first_name ILIKE $1 OR last_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY first_name, last_name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.FirstName, &w.LastName, &w.NationalID, &w.Role, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Update actualiza un trabajador.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE workers SET first_name = $2, last_name = $3, national_id = $4, role = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.FirstName, worker.LastName, worker.NationalID, worker.Role,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un trabajador por ID.
func (r *WorkerRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
