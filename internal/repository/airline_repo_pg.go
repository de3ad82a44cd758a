package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/avialab/aircatalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGAirlineRepository is the durable adapter behind the same port as the
// memory store. Unique indexes on iata_code/icao_code back the uniqueness
// rule across processes.
type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewPGAirlineRepository(db *pgxpool.Pool) *PGAirlineRepository {
	return &PGAirlineRepository{db: db}
}

const airlineColumns = `id, name, iata_code, icao_code, country, active, created_at, updated_at`

func (r *PGAirlineRepository) FindByID(ctx context.Context, id string) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE id=$1`, id)
	return scanAirline(row)
}

func (r *PGAirlineRepository) FindByIATACode(ctx context.Context, code string) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE iata_code=$1`, strings.ToUpper(code))
	return scanAirline(row)
}

func (r *PGAirlineRepository) FindByICAOCode(ctx context.Context, code string) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE icao_code=$1`, strings.ToUpper(code))
	return scanAirline(row)
}

func (r *PGAirlineRepository) FindAll(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airlines ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAirlines(rows)
}

func (r *PGAirlineRepository) FindActive(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airlines WHERE active ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAirlines(rows)
}

func (r *PGAirlineRepository) Save(ctx context.Context, a domain.Airline) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO airlines (id, name, iata_code, icao_code, country, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at`,
		a.ID, a.Name, a.IATACode, a.ICAOCode, a.Country, a.Active, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *PGAirlineRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM airlines WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *PGAirlineRepository) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE airlines`)
	return err
}

func scanAirline(row pgx.Row) (*domain.Airline, error) {
	var a domain.Airline
	err := row.Scan(&a.ID, &a.Name, &a.IATACode, &a.ICAOCode, &a.Country, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func collectAirlines(rows pgx.Rows) ([]domain.Airline, error) {
	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		var a domain.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.IATACode, &a.ICAOCode, &a.Country, &a.Active, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
