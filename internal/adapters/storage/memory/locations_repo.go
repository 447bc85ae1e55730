package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"stray-rescue/internal/domain/locations"
)

// LocationRepo guarda locations en memoria. Único por (name, country), case-insensitive.
type LocationRepo struct {
	mu sync.RWMutex

	byID map[string]locations.Location
	// orden de inserción; Any devuelve el primero
	order []string

	// FailCreate fuerza error en Create (tests de fallback).
	FailCreate error
}

func NewLocationRepo() *LocationRepo {
	return &LocationRepo{
		byID: make(map[string]locations.Location),
	}
}

func naturalKey(name, country string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(country))
}

func (r *LocationRepo) Create(ctx context.Context, l locations.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate != nil {
		return r.FailCreate
	}
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("location id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return locations.ErrConflict
	}
	key := naturalKey(l.Name, l.Country)
	for _, existing := range r.byID {
		if naturalKey(existing.Name, existing.Country) == key {
			return locations.ErrConflict
		}
	}

	r.byID[l.ID] = l
	r.order = append(r.order, l.ID)
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id string) (locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return locations.Location{}, locations.ErrNotFound
	}
	return l, nil
}

func (r *LocationRepo) FindByNameCountry(ctx context.Context, name, country string) (locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := naturalKey(name, country)
	for _, id := range r.order {
		l := r.byID[id]
		if naturalKey(l.Name, l.Country) == key {
			return l, nil
		}
	}
	return locations.Location{}, locations.ErrNotFound
}

func (r *LocationRepo) Any(ctx context.Context) (locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return locations.Location{}, locations.ErrNotFound
	}
	return r.byID[r.order[0]], nil
}

func (r *LocationRepo) List(ctx context.Context) ([]locations.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]locations.Location, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Count devuelve cuántas locations hay (tests).
func (r *LocationRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
