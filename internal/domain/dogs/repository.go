package dogs

import (
	"context"
	"errors"

	"stray-rescue/internal/domain/access"
)

var (
	ErrNotFound = errors.New("dog not found")
)

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	// ListByLocation ordena por created_at desc.
	ListByLocation(ctx context.Context, locationID string, filter ListFilter) ([]Dog, error)
}

type ListFilter struct {
	Statuses []access.DogStatus
}
