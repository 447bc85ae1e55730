package users

import (
	"context"
	"errors"
	"time"

	"stray-rescue/internal/domain/access"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrConflict = errors.New("profile already exists")
)

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	UpdateLocation(ctx context.Context, id, locationID string, at time.Time) error
	UpdateRole(ctx context.Context, id string, role access.Role, at time.Time) error
}
