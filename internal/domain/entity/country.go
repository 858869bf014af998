package entity

import "time"

// Country entidad de referencia: posee productos, exportadores y usuarios.
type Country struct {
	ID          string
	Name        string
	Code        string // código ISO, único
	Region      string
	FlagURL     *string
	ContactInfo *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
