package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"stray-rescue/internal/domain/events"
)

type eventRepo struct {
	mu    sync.RWMutex
	byID  map[string]events.Event
	order []string
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.Event),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) ListByDog(ctx context.Context, dogID string, filter events.ListFilter) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, id := range r.order {
		e := r.byID[id]
		if e.DogID != dogID {
			continue
		}
		if len(filter.PrivacyLevels) > 0 && !slices.Contains(filter.PrivacyLevels, e.Privacy) {
			continue
		}
		if len(filter.Types) > 0 && !slices.Contains(filter.Types, e.Type) {
			continue
		}
		out = append(out, e)
	}

	// created_at desc; empates en orden de llegada
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
