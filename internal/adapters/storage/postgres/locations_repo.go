package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"stray-rescue/internal/domain/locations"
)

type LocationsRepo struct {
	db *sql.DB
}

func NewLocationsRepo(db *sql.DB) *LocationsRepo {
	return &LocationsRepo{db: db}
}

func (r *LocationsRepo) Create(ctx context.Context, l locations.Location) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (id, name, country, created_at)
		VALUES ($1,$2,$3,$4)
	`, l.ID, l.Name, l.Country, l.CreatedAt)
	if isUniqueViolation(err) {
		return locations.ErrConflict
	}
	return err
}

func (r *LocationsRepo) GetByID(ctx context.Context, id string) (locations.Location, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return locations.Location{}, locations.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, country, created_at
		FROM locations
		WHERE id = $1
	`, id))
}

func (r *LocationsRepo) FindByNameCountry(ctx context.Context, name, country string) (locations.Location, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, country, created_at
		FROM locations
		WHERE lower(name) = lower($1) AND lower(country) = lower($2)
		LIMIT 1
	`, strings.TrimSpace(name), strings.TrimSpace(country)))
}

func (r *LocationsRepo) Any(ctx context.Context) (locations.Location, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, country, created_at
		FROM locations
		ORDER BY created_at ASC
		LIMIT 1
	`))
}

func (r *LocationsRepo) List(ctx context.Context) ([]locations.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, country, created_at
		FROM locations
		ORDER BY country, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]locations.Location, 0)
	for rows.Next() {
		var l locations.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Country, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LocationsRepo) scanOne(row *sql.Row) (locations.Location, error) {
	var l locations.Location
	if err := row.Scan(&l.ID, &l.Name, &l.Country, &l.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return locations.Location{}, locations.ErrNotFound
		}
		return locations.Location{}, err
	}
	return l, nil
}
