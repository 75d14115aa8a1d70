package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// WorkerUseCase casos de uso CRUD para trabajadores de patio.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create da de alta un trabajador. Nombre y apellido son obligatorios.
func (uc *WorkerUseCase) Create(in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	worker := &entity.Worker{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		NationalID: in.NationalID,
		Role:       in.Role,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByID obtiene un trabajador por ID; nil si no existe.
func (uc *WorkerUseCase) GetByID(id string) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores por nombre/apellido, con filtro opcional.
func (uc *WorkerUseCase) List(search string) ([]*dto.WorkerResponse, error) {
	workers, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, toWorkerResponse(w))
	}
	return out, nil
}

// Update edita un trabajador.
func (uc *WorkerUseCase) Update(id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		if *in.FirstName == "" {
			return nil, domain.ErrInvalidInput
		}
		worker.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if *in.LastName == "" {
			return nil, domain.ErrInvalidInput
		}
		worker.LastName = *in.LastName
	}
	if in.NationalID != nil {
		worker.NationalID = *in.NationalID
	}
	if in.Role != nil {
		worker.Role = *in.Role
	}
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// Delete elimina un trabajador por ID.
func (uc *WorkerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:         w.ID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		NationalID: w.NationalID,
		Role:       w.Role,
		CreatedAt:  w.CreatedAt,
	}
}
