package repository

import "github.com/gevp/gevp-api/internal/domain/entity"

// CountryRepository define el puerto de persistencia para Country (DIP).
type CountryRepository interface {
	GetByID(id string) (*entity.Country, error)
	List() ([]*entity.Country, error)
}
