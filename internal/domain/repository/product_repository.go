package repository

import "github.com/gevp/gevp-api/internal/domain/entity"

// ProductFilter filtros opcionales para listados públicos de productos.
type ProductFilter struct {
	Search   string // substring sobre name, case-insensitive
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListByCountry(countryID string) ([]*entity.Product, error)
}
