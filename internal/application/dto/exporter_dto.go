package dto

import "time"

// CreateExporterRequest entrada para registrar un exportador.
// CountryID solo aplica para SUPER_ADMIN, igual que en productos.
type CreateExporterRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	LicenseID string  `json:"license_id" validate:"required"`
	Contact   *string `json:"contact"`
	Website   *string `json:"website"`
	CountryID string  `json:"country_id" validate:"omitempty,uuid"`
}

// ExporterResponse salida de un exportador.
type ExporterResponse struct {
	ID        string    `json:"id"`
	CountryID string    `json:"country_id"`
	Name      string    `json:"name"`
	LicenseID string    `json:"license_id"`
	Contact   *string   `json:"contact"`
	Website   *string   `json:"website"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
