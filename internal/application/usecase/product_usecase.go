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
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// Toda mutación pasa por policy.Allowed y deja rastro en auditoría.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// List lista productos con filtros opcionales (lectura pública).
func (uc *ProductUseCase) List(search, category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(repository.ProductFilter{Search: search, Category: category})
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCountry lista los productos de un país (lectura pública).
func (uc *ProductUseCase) ListByCountry(countryID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCountry(countryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Create crea un producto a nombre del país del actor. Un SUPER_ADMIN puede
// indicar country_id en el request; el resto de roles publica sobre el suyo
// y sin país asignado no puede crear (ErrNoCountryAssigned).
func (uc *ProductUseCase) Create(actor Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	owner := actor.CountryID
	if actor.Role == entity.RoleSuperAdmin && in.CountryID != "" {
		owner = in.CountryID
	}
	if owner == "" {
		if actor.Role != entity.RoleSuperAdmin {
			return nil, domain.ErrNoCountryAssigned
		}
		return nil, domain.ErrInvalidInput // SUPER_ADMIN debe indicar country_id
	}
	if !policy.Allowed(actor.Role, policy.ActionCreate, owner, actor.CountryID) {
		return nil, domain.ErrForbidden
	}
	if err := validateProductNumbers(in.Quantity, in.TaxRate); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CountryID:  owner,
		Name:       in.Name,
		Unit:       in.Unit,
		Quantity:   in.Quantity,
		TaxRate:    in.TaxRate,
		TimePeriod: in.TimePeriod,
		Tags:       in.Tags,
		Category:   in.Category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor.ID, entity.AuditCreateProduct, fmt.Sprintf("Created product: %s", product.Name))
	return toProductResponse(product), nil
}

// Update actualiza un producto existente. Devuelve (nil, nil) si no existe;
// ErrForbidden si el actor no puede mutar recursos de ese país.
func (uc *ProductUseCase) Update(actor Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !policy.Allowed(actor.Role, policy.ActionUpdate, product.CountryID, actor.CountryID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.TaxRate != nil {
		product.TaxRate = *in.TaxRate
	}
	if in.TimePeriod != nil {
		product.TimePeriod = *in.TimePeriod
	}
	if in.Tags != nil {
		product.Tags = in.Tags
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if err := validateProductNumbers(product.Quantity, product.TaxRate); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor.ID, entity.AuditUpdateProduct, fmt.Sprintf("Updated product: %s", product.Name))
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrNotFound si no existe; ErrForbidden si el
// actor no puede mutar recursos de ese país.
func (uc *ProductUseCase) Delete(actor Actor, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !policy.Allowed(actor.Role, policy.ActionDelete, product.CountryID, actor.CountryID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor.ID, entity.AuditDeleteProduct, fmt.Sprintf("Deleted product: %s", product.Name))
	return nil
}

func validateProductNumbers(quantity, taxRate decimal.Decimal) error {
	if quantity.IsNegative() || taxRate.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		CountryID:  p.CountryID,
		Name:       p.Name,
		Unit:       p.Unit,
		Quantity:   p.Quantity,
		TaxRate:    p.TaxRate,
		TimePeriod: p.TimePeriod,
		Tags:       p.Tags,
		Category:   p.Category,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
