package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CatalogRepository define el puerto de persistencia para el catálogo de productos.
type CatalogRepository interface {
	Create(product *entity.CatalogProduct) error
	GetByID(id string) (*entity.CatalogProduct, error)
	// List lista ordenado por nombre. search filtra por subcadena
	// (solo se aplica con 2+ caracteres); limit acota el resultado.
	List(search string, limit int) ([]*entity.CatalogProduct, error)
	Update(product *entity.CatalogProduct) error
	Delete(id string) error
}
