package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockItemUseCase casos de uso CRUD para artículos en stock (edición
// directa). Las mutaciones por vale pasan por el libro de stock, no por aquí.
type StockItemUseCase struct {
	repo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(repo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{repo: repo}
}

// Create da de alta un artículo. El nombre es obligatorio y único.
func (uc *StockItemUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	item := &entity.StockItem{
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     unit,
		Notes:    in.Notes,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (uc *StockItemUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toStockItemResponse(item), nil
}

// List lista artículos ordenados por nombre, con filtro opcional por subcadena.
func (uc *StockItemUseCase) List(search string) ([]*dto.StockItemResponse, error) {
	items, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toStockItemResponse(item))
	}
	return out, nil
}

// Update edita campos del artículo. No escribe bitácora: solo las
// operaciones de entrada/salida auditan cambios de cantidad.
func (uc *StockItemUseCase) Update(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// SetQuantity fija la cantidad en un valor absoluto (ajuste manual de oficina).
func (uc *StockItemUseCase) SetQuantity(id string, quantity int64) (*dto.StockItemResponse, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if err := uc.repo.SetQuantity(id, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return toStockItemResponse(item), nil
}

// Delete elimina un artículo por ID.
func (uc *StockItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
	}
}
