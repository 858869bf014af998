package usecase

import (
	"fmt"
	"time"

	"github.com/gevp/gevp-api/internal/application/audit"
	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/policy"
	"github.com/gevp/gevp-api/internal/domain/repository"
	"github.com/google/uuid"
)

// ExporterUseCase casos de uso para exportadores: listado público y alta gateada.
type ExporterUseCase struct {
	repo     repository.ExporterRepository
	recorder *audit.Recorder
}

// NewExporterUseCase construye el caso de uso.
func NewExporterUseCase(repo repository.ExporterRepository, recorder *audit.Recorder) *ExporterUseCase {
	return &ExporterUseCase{repo: repo, recorder: recorder}
}

// List lista exportadores, opcionalmente filtrados por país (lectura pública).
func (uc *ExporterUseCase) List(countryID string) ([]dto.ExporterResponse, error) {
	list, err := uc.repo.List(countryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExporterResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExporterResponse(e))
	}
	return items, nil
}

// Create registra un exportador a nombre del país del actor, con el mismo
// gating de propiedad que los productos. LicenseID duplicado → ErrDuplicate.
func (uc *ExporterUseCase) Create(actor Actor, in dto.CreateExporterRequest) (*dto.ExporterResponse, error) {
	owner := actor.CountryID
	if actor.Role == entity.RoleSuperAdmin && in.CountryID != "" {
		owner = in.CountryID
	}
	if owner == "" {
		if actor.Role != entity.RoleSuperAdmin {
			return nil, domain.ErrNoCountryAssigned
		}
		return nil, domain.ErrInvalidInput
	}
	if !policy.Allowed(actor.Role, policy.ActionCreate, owner, actor.CountryID) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	exporter := &entity.Exporter{
		ID:        uuid.New().String(),
		CountryID: owner,
		Name:      in.Name,
		LicenseID: in.LicenseID,
		Contact:   in.Contact,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(exporter); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor.ID, entity.AuditCreateExporter, fmt.Sprintf("Created exporter: %s", exporter.Name))
	return toExporterResponse(exporter), nil
}

func toExporterResponse(e *entity.Exporter) *dto.ExporterResponse {
	if e == nil {
		return nil
	}
	return &dto.ExporterResponse{
		ID:        e.ID,
		CountryID: e.CountryID,
		Name:      e.Name,
		LicenseID: e.LicenseID,
		Contact:   e.Contact,
		Website:   e.Website,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
