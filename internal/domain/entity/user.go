package entity

import "time"

// Roles válidos para User. El rol es informativo: la API no aplica
// autorización por rol.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa a un usuario de oficina, responsable de los vales que registra.
type User struct {
	ID        string
	Username  string // único
	Role      string // admin, staff
	CreatedAt time.Time
}
