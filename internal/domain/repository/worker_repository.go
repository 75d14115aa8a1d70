package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para Worker.
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	// List lista ordenado por nombre y apellido; search filtra por subcadena.
	List(search string) ([]*entity.Worker, error)
	Update(worker *entity.Worker) error
	Delete(id string) error
}
