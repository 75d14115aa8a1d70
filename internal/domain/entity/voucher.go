package entity

import "time"

// EntryVoucher es el encabezado de un vale de entrada (mercancía recibida).
// AddedByName solo se llena en lecturas con join a users.
type EntryVoucher struct {
	ID          string
	Date        time.Time
	AddedBy     string
	AddedByName string
}

// EntryDetail es una línea de un vale de entrada. Insertar una línea es la
// unidad de mutación de stock: cada línea dispara exactamente una operación
// del libro de stock.
type EntryDetail struct {
	ID        string
	VoucherID string
	ItemID    string
	WorkerID  string
	Quantity  int64 // > 0

	// Campos de lectura (join con stock_items y workers). El join con
	// stock_items es LEFT: el artículo pudo haberse eliminado al llegar a cero.
	ItemName        string
	Unit            string
	WorkerFirstName string
	WorkerLastName  string
}

// ExitVoucher es el encabezado de un vale de salida (mercancía entregada).
type ExitVoucher struct {
	ID            string
	Date          time.Time
	HandledBy     string
	HandledByName string
}

// ExitDetail es una línea de un vale de salida.
type ExitDetail struct {
	ID        string
	VoucherID string
	ItemID    string
	WorkerID  string
	Quantity  int64 // > 0

	ItemName        string
	Unit            string
	WorkerFirstName string
	WorkerLastName  string
}
