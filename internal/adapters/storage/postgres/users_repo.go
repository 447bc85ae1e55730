package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, p users.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, full_name,
			role, location_id,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Email,
		p.FullName,
		string(p.Role),
		p.LocationID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrConflict
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.Profile, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return users.Profile{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email, full_name,
			role, location_id,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var p users.Profile
	var role string
	if err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&role,
		&p.LocationID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Profile{}, users.ErrNotFound
		}
		return users.Profile{}, err
	}

	// Un valor fuera del enum queda como RoleUnknown (mínimo privilegio).
	p.Role = access.ParseRole(role)
	return p, nil
}

func (r *UsersRepo) UpdateLocation(ctx context.Context, id, locationID string, at time.Time) error {
	if !validID(id) {
		return users.ErrNotFound
	}
	return r.exec(ctx, `
		UPDATE users
		SET location_id = $2, updated_at = $3
		WHERE id = $1
	`, id, locationID, at)
}

func (r *UsersRepo) UpdateRole(ctx context.Context, id string, role access.Role, at time.Time) error {
	if !validID(id) {
		return users.ErrNotFound
	}
	return r.exec(ctx, `
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1
	`, id, string(role), at)
}

func (r *UsersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}
