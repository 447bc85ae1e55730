package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"stray-rescue/internal/domain/dogs"
)

type dogRepo struct {
	mu    sync.RWMutex
	byID  map[string]dogs.Dog
	order []string
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = cloneDog(d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; !exists {
		return dogs.ErrNotFound
	}
	r.byID[d.ID] = cloneDog(d)
	return nil
}

func (r *dogRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	return cloneDog(d), nil
}

func (r *dogRepo) ListByLocation(ctx context.Context, locationID string, filter dogs.ListFilter) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0)
	for _, id := range r.order {
		d := r.byID[id]
		if d.LocationID != locationID {
			continue
		}
		if len(filter.Statuses) > 0 {
			ok := false
			for _, s := range filter.Statuses {
				if d.Status == s {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, cloneDog(d))
	}

	// created_at desc; empates en orden de inserción
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneDog(d dogs.Dog) dogs.Dog {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}
