package usecase

import (
	"fmt"

	"github.com/gevp/gevp-api/internal/application/audit"
	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/policy"
	"github.com/gevp/gevp-api/internal/domain/repository"
)

// auditLogLimit tope de entradas devueltas por el panel de admin.
const auditLogLimit = 100

// Paginación de usuarios: límite por defecto y tope duro por página.
const (
	usersDefaultLimit = 100
	usersMaxLimit     = 1000
)

// AdminUseCase operaciones reservadas a SUPER_ADMIN: gestión de usuarios y
// lectura de auditoría. El router ya exige el rol, pero la política se
// verifica igualmente aquí para que ningún punto de entrada futuro la saltee.
type AdminUseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	recorder  *audit.Recorder
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository, recorder *audit.Recorder) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, auditRepo: auditRepo, recorder: recorder}
}

// ListUsers lista usuarios registrados, paginado (limit/offset). Valores
// fuera de rango se normalizan al default y al tope por página.
func (uc *AdminUseCase) ListUsers(actor Actor, limit, offset int) ([]dto.UserResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionListUsers, "", actor.CountryID) {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = usersDefaultLimit
	}
	if limit > usersMaxLimit {
		limit = usersMaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			CountryID: u.CountryID,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return items, nil
}

// ActivateUser activa una cuenta pendiente. ErrUserNotFound si no existe.
func (uc *AdminUseCase) ActivateUser(actor Actor, userID string) error {
	if !policy.Allowed(actor.Role, policy.ActionActivateUser, "", actor.CountryID) {
		return domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.userRepo.SetActive(userID, true); err != nil {
		return err
	}
	uc.recorder.Record(actor.ID, entity.AuditActivateUser, fmt.Sprintf("Activated user: %s", user.Email))
	return nil
}

// AuditLogs devuelve las últimas entradas de auditoría, descendente por
// timestamp, con tope de 100.
func (uc *AdminUseCase) AuditLogs(actor Actor) ([]dto.AuditLogResponse, error) {
	if !policy.Allowed(actor.Role, policy.ActionReadAuditLog, "", actor.CountryID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.auditRepo.ListRecent(auditLogLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.AuditLogResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Action:      e.Action,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}
	return items, nil
}
