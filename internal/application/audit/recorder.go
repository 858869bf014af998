package audit

import (
	"time"

	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
	"github.com/gevp/gevp-api/pkg/logger"
	"github.com/google/uuid"
)

// Recorder agrega entradas inmutables al registro de auditoría.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder con el puerto de persistencia y el logger.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record agrega una entrada de auditoría. Best-effort respecto a la operación
// que describe: un fallo al insertar no se propaga al llamador, pero sí se
// registra en el log operacional para que no pase desapercibido.
func (r *Recorder) Record(actorID, action, description string) {
	entry := &entity.AuditLogEntry{
		ID:          uuid.New().String(),
		UserID:      actorID,
		Action:      action,
		Description: description,
		Timestamp:   time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Error().Err(err).
			Str("user_id", actorID).
			Str("action", action).
			Msg("no se pudo registrar la entrada de auditoría")
	}
}
