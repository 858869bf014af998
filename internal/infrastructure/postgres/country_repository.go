package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
)

var _ repository.CountryRepository = (*CountryRepo)(nil)

// CountryRepo implementación del puerto CountryRepository sobre PostgreSQL.
type CountryRepo struct {
	pool *pgxpool.Pool
}

// NewCountryRepository construye el adaptador de persistencia para países.
func NewCountryRepository(pool *pgxpool.Pool) *CountryRepo {
	return &CountryRepo{pool: pool}
}

// GetByID obtiene un país por ID.
func (r *CountryRepo) GetByID(id string) (*entity.Country, error) {
	query := `
		SELECT id, name, code, region, flag_url, contact_info, created_at, updated_at
		FROM countries WHERE id = $1`
	var c entity.Country
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.Region, &c.FlagURL, &c.ContactInfo,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return &c, nil
}

// List lista todos los países ordenados por nombre.
func (r *CountryRepo) List() ([]*entity.Country, error) {
	query := `
		SELECT id, name, code, region, flag_url, contact_info, created_at, updated_at
		FROM countries ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Region, &c.FlagURL, &c.ContactInfo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
