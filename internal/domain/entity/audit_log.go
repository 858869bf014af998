package entity

import "time"

// Acciones auditables. Deben coincidir con lo que consume el panel de admin.
const (
	AuditCreateProduct  = "CREATE_PRODUCT"
	AuditUpdateProduct  = "UPDATE_PRODUCT"
	AuditDeleteProduct  = "DELETE_PRODUCT"
	AuditCreateExporter = "CREATE_EXPORTER"
	AuditActivateUser   = "ACTIVATE_USER"
)

// AuditLogEntry registro inmutable de una acción mutante: quién, qué y cuándo.
// Solo se inserta; nunca se actualiza ni se borra.
type AuditLogEntry struct {
	ID          string
	UserID      string
	Action      string // ver constantes Audit*
	Description string
	Timestamp   time.Time
}
