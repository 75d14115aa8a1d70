package dto

// ErrorResponse cuerpo de error HTTP. El campo error lleva el mensaje
// legible; code es un identificador estable para el frontend.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// MessageResponse respuesta simple de confirmación (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
