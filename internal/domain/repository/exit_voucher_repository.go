package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ExitVoucherRepository define el puerto de persistencia para vales de
// salida y sus líneas. Misma forma que EntryVoucherRepository.
type ExitVoucherRepository interface {
	Create(voucher *entity.ExitVoucher) error
	GetByID(id string) (*entity.ExitVoucher, error)
	List() ([]*entity.ExitVoucher, error)

	CreateDetail(detail *entity.ExitDetail) error
	GetDetail(id string) (*entity.ExitDetail, error)
	ListDetails() ([]*entity.ExitDetail, error)
	ListDetailsByVoucher(voucherID string) ([]*entity.ExitDetail, error)
	UpdateDetail(detail *entity.ExitDetail) error
	DeleteDetail(id string) error
}
