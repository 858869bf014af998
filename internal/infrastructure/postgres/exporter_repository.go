package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gevp/gevp-api/internal/domain"
	"github.com/gevp/gevp-api/internal/domain/entity"
	"github.com/gevp/gevp-api/internal/domain/repository"
)

var _ repository.ExporterRepository = (*ExporterRepo)(nil)

// ExporterRepo implementación del puerto ExporterRepository sobre PostgreSQL.
type ExporterRepo struct {
	pool *pgxpool.Pool
}

// NewExporterRepository construye el adaptador de persistencia para exportadores.
func NewExporterRepository(pool *pgxpool.Pool) *ExporterRepo {
	return &ExporterRepo{pool: pool}
}

// Create persiste un nuevo exportador. LicenseID duplicado → ErrDuplicate.
func (r *ExporterRepo) Create(exporter *entity.Exporter) error {
	query := `
		INSERT INTO exporters (id, country_id, name, license_id, contact, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		exporter.ID, exporter.CountryID, exporter.Name, exporter.LicenseID,
		exporter.Contact, exporter.Website, exporter.CreatedAt, exporter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert exporter: %w", err)
	}
	return nil
}

// List lista exportadores, filtrados por país si countryID no es vacío.
func (r *ExporterRepo) List(countryID string) ([]*entity.Exporter, error) {
	query := `
		SELECT id, country_id, name, license_id, contact, website, created_at, updated_at
		FROM exporters`
	args := []any{}
	if countryID != "" {
		query += ` WHERE country_id = $1`
		args = append(args, countryID)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exporters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Exporter
	for rows.Next() {
		var e entity.Exporter
		if err := rows.Scan(&e.ID, &e.CountryID, &e.Name, &e.LicenseID, &e.Contact, &e.Website, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exporter: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
