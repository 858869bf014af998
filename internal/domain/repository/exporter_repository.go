package repository

import "github.com/gevp/gevp-api/internal/domain/entity"

// ExporterRepository define el puerto de persistencia para Exporter (DIP).
type ExporterRepository interface {
	Create(exporter *entity.Exporter) error
	List(countryID string) ([]*entity.Exporter, error)
}
