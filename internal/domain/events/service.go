package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/dogs"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type        EventType
	Title       string
	Description string
	Privacy     access.PrivacyLevel
}

func (s *Service) Create(ctx context.Context, viewer access.Viewer, dog dogs.Dog, in CreateInput) (Event, error) {
	if strings.TrimSpace(dog.ID) == "" || strings.TrimSpace(viewer.ID) == "" {
		return Event{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Event{}, ErrInvalidInput
	}

	typ := in.Type
	if typ == "" {
		typ = EventTypeNote
	}
	if !typ.Valid() {
		return Event{}, ErrInvalidInput
	}
	privacy := in.Privacy
	if privacy == "" {
		privacy = access.PrivacyPublic
	}
	if !privacy.Valid() {
		return Event{}, ErrInvalidInput
	}

	if !access.CanCreateEvent(viewer.Role, dog.Ref(), viewer.ID, privacy) {
		return Event{}, access.ErrAccessDenied
	}

	e := Event{
		ID:          uuid.NewString(),
		DogID:       dog.ID,
		Type:        typ,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Privacy:     privacy,
		CreatedBy:   viewer.ID,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// ListVisible devuelve los eventos del perro que el rol puede leer, más recientes primero.
// Si el perro no es visible es un corte duro (access.ErrAccessDenied), no un filtro.
// Un perro sin eventos visibles devuelve una lista vacía.
func (s *Service) ListVisible(ctx context.Context, viewer access.Viewer, dog dogs.Dog, filter ListFilter) ([]Event, error) {
	if !access.CanViewDog(viewer.Role, dog.Ref(), viewer.ID) {
		return nil, access.ErrAccessDenied
	}
	for _, t := range filter.Types {
		if !t.Valid() {
			return nil, ErrInvalidInput
		}
	}

	// El predicado de privacidad lo decide siempre la política, nunca el caller.
	filter.PrivacyLevels = access.VisiblePrivacyLevels(viewer.Role)

	items, err := s.repo.ListByDog(ctx, dog.ID, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Event{}
	}
	return items, nil
}

func (s *Service) GetVisible(ctx context.Context, viewer access.Viewer, dog dogs.Dog, id string) (Event, error) {
	if !access.CanViewDog(viewer.Role, dog.Ref(), viewer.ID) {
		return Event{}, access.ErrAccessDenied
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrNotFound
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	// Evento de otro perro => no existe para esta ruta.
	if e.DogID != dog.ID {
		return Event{}, ErrNotFound
	}
	if !access.CanReadPrivacy(viewer.Role, e.Privacy) {
		return Event{}, access.ErrAccessDenied
	}
	return e, nil
}
