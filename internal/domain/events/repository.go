package events

import (
	"context"
	"errors"

	"stray-rescue/internal/domain/access"
)

var (
	ErrNotFound = errors.New("event not found")
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	// ListByDog ordena por created_at desc; empates en orden de llegada.
	ListByDog(ctx context.Context, dogID string, filter ListFilter) ([]Event, error)
}

type ListFilter struct {
	// PrivacyLevels es un predicado de la query. Vacío = sin filtro.
	PrivacyLevels []access.PrivacyLevel
	Types         []EventType
}
