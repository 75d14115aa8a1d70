package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Límite por defecto del listado del catálogo (el buscador del asistente
// de vales no necesita más).
const defaultCatalogLimit = 50

// CatalogUseCase casos de uso CRUD para el catálogo de productos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create agrega un producto al catálogo. Nombre obligatorio; unidad por
// defecto pcs.
func (uc *CatalogUseCase) Create(in dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit := in.DefaultUnit
	if unit == "" {
		unit = "pcs"
	}
	product := &entity.CatalogProduct{
		Name:         in.Name,
		DefaultUnit:  unit,
		DefaultPrice: in.DefaultPrice,
		Notes:        in.Notes,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toCatalogProductResponse(product), nil
}

// GetByID obtiene un producto del catálogo; nil si no existe.
func (uc *CatalogUseCase) GetByID(id string) (*dto.CatalogProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toCatalogProductResponse(product), nil
}

// List lista productos del catálogo. search se ignora con menos de 2
// caracteres; limit <= 0 usa el valor por defecto.
func (uc *CatalogUseCase) List(search string, limit int) ([]*dto.CatalogProductResponse, error) {
	if len(search) < 2 {
		search = ""
	}
	if limit <= 0 {
		limit = defaultCatalogLimit
	}
	products, err := uc.repo.List(search, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toCatalogProductResponse(p))
	}
	return out, nil
}

// Update edita un producto del catálogo.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.DefaultUnit != nil {
		product.DefaultUnit = *in.DefaultUnit
	}
	if in.DefaultPrice != nil {
		product.DefaultPrice = *in.DefaultPrice
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toCatalogProductResponse(product), nil
}

// Delete elimina un producto del catálogo por ID.
func (uc *CatalogUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCatalogProductResponse(p *entity.CatalogProduct) *dto.CatalogProductResponse {
	return &dto.CatalogProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		DefaultUnit:  p.DefaultUnit,
		DefaultPrice: p.DefaultPrice,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}
