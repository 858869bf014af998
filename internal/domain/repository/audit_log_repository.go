package repository

import "github.com/gevp/gevp-api/internal/domain/entity"

// AuditLogRepository puerto de persistencia para el registro de auditoría.
// Append-only: no hay Update ni Delete.
type AuditLogRepository interface {
	Create(entry *entity.AuditLogEntry) error
	// ListRecent devuelve las entradas más recientes, descendente por timestamp.
	ListRecent(limit int) ([]*entity.AuditLogEntry, error)
}
