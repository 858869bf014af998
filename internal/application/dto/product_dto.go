package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// CountryID solo lo usa un SUPER_ADMIN para publicar a nombre de un país;
// el resto de roles publica siempre sobre su propio país.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Unit       string          `json:"unit" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	TimePeriod string          `json:"time_period" validate:"required"`
	Tags       []string        `json:"tags"`
	Category   string          `json:"category" validate:"required"`
	CountryID  string          `json:"country_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos puntero:
// nil significa "no tocar"; cada campo mutable está nombrado explícitamente.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit       *string          `json:"unit"`
	Quantity   *decimal.Decimal `json:"quantity"`
	TaxRate    *decimal.Decimal `json:"tax_rate"`
	TimePeriod *string          `json:"time_period"`
	Tags       []string         `json:"tags"`
	Category   *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	CountryID  string          `json:"country_id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	TimePeriod string          `json:"time_period"`
	Tags       []string        `json:"tags"`
	Category   string          `json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
