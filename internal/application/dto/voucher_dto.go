package dto

import "time"

// VoucherLineRequest es una línea del asistente de vales. En entradas se
// acepta item_id (artículo existente) o item_name (alta/reposición por
// nombre, con unit/notes opcionales); en salidas item_id es obligatorio.
type VoucherLineRequest struct {
	ItemID   string `json:"item_id,omitempty"`
	ItemName string `json:"item_name,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
	WorkerID string `json:"worker_id"`
	Quantity int64  `json:"quantity"`
}

// CreateVoucherRequest body para POST /api/entry-vouchers y /api/exit-vouchers.
// UserID identifica al usuario de oficina responsable; no hay valor por defecto.
type CreateVoucherRequest struct {
	UserID  string               `json:"user_id"`
	Details []VoucherLineRequest `json:"details"`
}

// AppendDetailRequest body para POST /api/entry-vouchers/details y
// /api/exit-vouchers/details (agregar una línea a un vale existente).
type AppendDetailRequest struct {
	VoucherID string `json:"voucher_id"`
	ItemID    string `json:"item_id,omitempty"`
	ItemName  string `json:"item_name,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Notes     string `json:"notes,omitempty"`
	WorkerID  string `json:"worker_id"`
	UserID    string `json:"user_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateDetailRequest body para PUT sobre una línea. No reajusta stock.
type UpdateDetailRequest struct {
	Quantity *int64  `json:"quantity,omitempty"`
	WorkerID *string `json:"worker_id,omitempty"`
}

// VoucherDetailResponse línea de vale con datos de lectura.
type VoucherDetailResponse struct {
	ID              string `json:"id"`
	VoucherID       string `json:"voucher_id"`
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name,omitempty"`
	Unit            string `json:"unit,omitempty"`
	WorkerID        string `json:"worker_id"`
	WorkerFirstName string `json:"worker_first_name,omitempty"`
	WorkerLastName  string `json:"worker_last_name,omitempty"`
	Quantity        int64  `json:"quantity"`
}

// VoucherResponse encabezado de vale; Details solo en el GET individual.
type VoucherResponse struct {
	ID       string                  `json:"id"`
	Date     time.Time               `json:"date"`
	UserID   string                  `json:"user_id"`
	Username string                  `json:"username,omitempty"`
	Details  []VoucherDetailResponse `json:"details,omitempty"`
}
