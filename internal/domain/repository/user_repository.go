package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Create y Update devuelven domain.ErrUsernameAlreadyExists si el username está tomado.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(search string) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
