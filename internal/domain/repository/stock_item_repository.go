package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para StockItem.
// Los métodos *ForUpdate, AddQuantity, DecrementIfAvailable y Delete se usan
// dentro de transacciones del libro de stock para garantizar consistencia.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByName(name string) (*entity.StockItem, error)
	// List lista ordenado por nombre; search filtra por subcadena (vacío = todos).
	List(search string) ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	SetQuantity(id string, quantity int64) error
	Delete(id string) error

	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.StockItem, error)
	// GetByNameForUpdate bloquea por nombre exacto; nil si no existe.
	GetByNameForUpdate(name string) (*entity.StockItem, error)
	// AddQuantity suma delta a la cantidad actual.
	AddQuantity(id string, delta int64) error
	// DecrementIfAvailable resta quantity solo si hay suficiente
	// (UPDATE condicional verificado por filas afectadas). Devuelve false
	// si la fila no existe o la cantidad es menor a la solicitada.
	DecrementIfAvailable(id string, quantity int64) (bool, error)
}
