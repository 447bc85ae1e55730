package locations

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("location not found")
	// ErrConflict: ya existe una location con el mismo (name, country).
	ErrConflict = errors.New("location already exists")
)

type Repository interface {
	Create(ctx context.Context, l Location) error
	GetByID(ctx context.Context, id string) (Location, error)
	FindByNameCountry(ctx context.Context, name, country string) (Location, error)
	// Any devuelve cualquier location existente (la más antigua). ErrNotFound si no hay ninguna.
	Any(ctx context.Context) (Location, error)
	List(ctx context.Context) ([]Location, error)
}
