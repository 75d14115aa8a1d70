package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EntryVoucherRepository define el puerto de persistencia para vales de
// entrada y sus líneas. Create y CreateDetail se invocan dentro de la
// transacción del libro de stock.
type EntryVoucherRepository interface {
	Create(voucher *entity.EntryVoucher) error
	GetByID(id string) (*entity.EntryVoucher, error)
	// List lista encabezados con el username del responsable, más recientes primero.
	List() ([]*entity.EntryVoucher, error)

	CreateDetail(detail *entity.EntryDetail) error
	GetDetail(id string) (*entity.EntryDetail, error)
	ListDetails() ([]*entity.EntryDetail, error)
	// ListDetailsByVoucher devuelve las líneas con nombre de artículo, unidad
	// y nombre del trabajador (joins de lectura).
	ListDetailsByVoucher(voucherID string) ([]*entity.EntryDetail, error)
	// UpdateDetail y DeleteDetail no reajustan stock (comportamiento documentado).
	UpdateDetail(detail *entity.EntryDetail) error
	DeleteDetail(id string) error
}
