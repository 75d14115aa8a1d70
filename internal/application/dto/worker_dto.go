package dto

import "time"

// CreateWorkerRequest body para POST /api/workers.
type CreateWorkerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Role       string `json:"role"`
}

// UpdateWorkerRequest body para PUT /api/workers/:id.
type UpdateWorkerRequest struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	Role       *string `json:"role,omitempty"`
}

// WorkerResponse representación JSON de un trabajador.
type WorkerResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	NationalID string    `json:"national_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
