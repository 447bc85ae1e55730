package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoLocationAvailable = errors.New("no location available")
)

type Service struct {
	repo Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// ResolveOrCreate busca la location por clave natural y la crea si no existe.
//
// Si el insert falla (p.ej. otro signup la creó en paralelo) se vuelve a leer
// por clave natural y, como último recurso, se toma cualquier location
// existente: es preferible asignar mal la región inicial que bloquear el signup.
// Solo si todo eso falla se devuelve ErrNoLocationAvailable.
func (s *Service) ResolveOrCreate(ctx context.Context, name, country string) (Location, error) {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	if name == "" || country == "" {
		return Location{}, ErrInvalidInput
	}

	l, err := s.repo.FindByNameCountry(ctx, name, country)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.log.Warn("location lookup failed, trying insert",
			zap.String("name", name), zap.String("country", country), zap.Error(err))
	}

	l = Location{
		ID:        uuid.NewString(),
		Name:      name,
		Country:   country,
		CreatedAt: s.now(),
	}
	createErr := s.repo.Create(ctx, l)
	if createErr == nil {
		s.log.Info("location created",
			zap.String("location_id", l.ID), zap.String("name", name), zap.String("country", country))
		return l, nil
	}

	// Carrera con otro signup: el ganador ya está en la tabla.
	if existing, err := s.repo.FindByNameCountry(ctx, name, country); err == nil {
		return existing, nil
	}

	fallback, err := s.repo.Any(ctx)
	if err != nil {
		return Location{}, fmt.Errorf("%w: create: %v; fallback: %v", ErrNoLocationAvailable, createErr, err)
	}

	s.log.Warn("location create failed, using fallback location",
		zap.String("name", name),
		zap.String("country", country),
		zap.String("fallback_location_id", fallback.ID),
		zap.Error(createErr),
	)
	return fallback, nil
}

// ResolveZone resuelve (o crea) la location de una rescue zone.
func (s *Service) ResolveZone(ctx context.Context, code string) (Location, error) {
	z, err := ZoneByCode(code)
	if err != nil {
		return Location{}, err
	}
	return s.ResolveOrCreate(ctx, z.Name, z.Country)
}

func (s *Service) GetByID(ctx context.Context, id string) (Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Location{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.repo.List(ctx)
}
