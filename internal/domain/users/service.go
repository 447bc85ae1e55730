package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/locations"

	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// ZoneResolver evita depender de *locations.Service concreto.
type ZoneResolver interface {
	ResolveZone(ctx context.Context, code string) (locations.Location, error)
}

type Service struct {
	repo  Repository
	zones ZoneResolver
	log   *zap.Logger
	now   func() time.Time
}

func NewService(repo Repository, zones ZoneResolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:  repo,
		zones: zones,
		log:   log,
		now:   time.Now,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ViewerOf resuelve el rol y la región actual del usuario autenticado.
// Un rol guardado fuera del enum queda como access.RoleUnknown (falla cerrado).
func (s *Service) ViewerOf(ctx context.Context, userID string) (access.Viewer, error) {
	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return access.Viewer{}, err
	}
	return access.Viewer{
		ID:         p.ID,
		Role:       access.ParseRole(string(p.Role)),
		LocationID: p.LocationID,
	}, nil
}

// SwitchLocation mueve al usuario a otra rescue zone (crea la location si hace falta).
func (s *Service) SwitchLocation(ctx context.Context, userID, zone string) (Profile, error) {
	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	l, err := s.zones.ResolveZone(ctx, zone)
	if err != nil {
		return Profile{}, err
	}
	if l.ID == p.LocationID {
		return p, nil
	}

	now := s.now()
	if err := s.repo.UpdateLocation(ctx, p.ID, l.ID, now); err != nil {
		return Profile{}, err
	}

	s.log.Info("profile location switched",
		zap.String("user_id", p.ID),
		zap.String("from_location_id", p.LocationID),
		zap.String("to_location_id", l.ID),
	)

	p.LocationID = l.ID
	p.UpdatedAt = now
	return p, nil
}

// SetRole cambia el rol de otro usuario. Solo admin.
func (s *Service) SetRole(ctx context.Context, actor access.Viewer, userID, role string) (Profile, error) {
	if !access.CanManageRoles(actor.Role) {
		return Profile{}, access.ErrAccessDenied
	}

	r := access.ParseRole(role)
	if r == access.RoleUnknown {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if p.Role == r {
		return p, nil
	}

	now := s.now()
	if err := s.repo.UpdateRole(ctx, p.ID, r, now); err != nil {
		return Profile{}, err
	}

	s.log.Info("profile role changed",
		zap.String("user_id", p.ID),
		zap.String("actor_id", actor.ID),
		zap.String("from", string(p.Role)),
		zap.String("to", string(r)),
	)

	p.Role = r
	p.UpdatedAt = now
	return p, nil
}
