package usecase

import (
	"github.com/gevp/gevp-api/internal/application/dto"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
)

// CountryUseCase lecturas públicas del catálogo de países.
type CountryUseCase struct {
	repo repository.CountryRepository
}

// NewCountryUseCase construye el caso de uso.
func NewCountryUseCase(repo repository.CountryRepository) *CountryUseCase {
	return &CountryUseCase{repo: repo}
}

// List lista todos los países.
func (uc *CountryUseCase) List() ([]dto.CountryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCountryResponse(c))
	}
	return items, nil
}

func toCountryResponse(c *entity.Country) *dto.CountryResponse {
	if c == nil {
		return nil
	}
	return &dto.CountryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Code:        c.Code,
		Region:      c.Region,
		FlagURL:     c.FlagURL,
		ContactInfo: c.ContactInfo,
	}
}
