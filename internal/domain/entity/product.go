package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de exportación publicado por un país.
// Pertenece a exactamente un Country; la mutación está restringida al
// personal de ese país o a un SUPER_ADMIN.
type Product struct {
	ID         string
	CountryID  string
	Name       string
	Unit       string // kg, ton, unidad...
	Quantity   decimal.Decimal
	TaxRate    decimal.Decimal
	TimePeriod string // ej. "2025-Q3"
	Tags       []string
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
