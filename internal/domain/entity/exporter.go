package entity

import "time"

// Exporter representa un exportador licenciado de un país.
type Exporter struct {
	ID        string
	CountryID string
	Name      string
	LicenseID string // identificador de licencia, único
	Contact   *string
	Website   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
