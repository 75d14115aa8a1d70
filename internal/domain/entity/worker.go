package entity

import "time"

// Worker representa a la persona que manipula físicamente el material
// (carga/descarga en patio). Se referencia desde las líneas de los vales.
type Worker struct {
	ID         string
	FirstName  string
	LastName   string
	NationalID string // cédula / carte nationale
	Role       string
	CreatedAt  time.Time
}
