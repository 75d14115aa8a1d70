package dto

import "time"

// CreateUserRequest body para POST /api/users. Role por defecto: staff.
type CreateUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UpdateUserRequest body para PUT /api/users/:id.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UserResponse representación JSON de un usuario de oficina.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
