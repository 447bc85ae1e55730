package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/users"
)

type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]users.Profile

	// FailCreate fuerza error en Create (tests de ProfileCreationError).
	FailCreate error
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[string]users.Profile),
	}
}

func (r *UserRepo) Create(ctx context.Context, p users.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate != nil {
		return r.FailCreate
	}
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return users.ErrConflict
	}
	r.byID[p.ID] = p
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func (r *UserRepo) UpdateLocation(ctx context.Context, id, locationID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	p.LocationID = locationID
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id string, role access.Role, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return users.ErrNotFound
	}
	p.Role = role
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}
