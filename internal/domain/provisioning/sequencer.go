package provisioning

import (
	"context"
	"errors"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/locations"
	"stray-rescue/internal/domain/users"
	"stray-rescue/internal/ports/auth"

	"go.uber.org/zap"
)

const DefaultSettleDelay = time.Second

// LocationResolver es el paso 1 (resolve-or-create por clave natural).
// GetByID se usa cuando el perfil aceptado apunta a otra location.
type LocationResolver interface {
	ResolveOrCreate(ctx context.Context, name, country string) (locations.Location, error)
	GetByID(ctx context.Context, id string) (locations.Location, error)
}

// ProfileStore es lo mínimo que el paso 3 necesita del repositorio de perfiles.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (users.Profile, error)
	Create(ctx context.Context, p users.Profile) error
}

type Options struct {
	// SettleDelay: espera fija antes de leer el perfil, para dar tiempo al
	// trigger del backend que puede crearlo automáticamente.
	SettleDelay time.Duration
	Logger      *zap.Logger
}

// Sequencer ejecuta el signup: location -> identidad -> perfil.
// Cada paso corre en secuencia, sin reintentos.
type Sequencer struct {
	locations  LocationResolver
	identities auth.IdentityProvider
	profiles   ProfileStore

	settleDelay time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	now         func() time.Time
	log         *zap.Logger
}

func NewSequencer(locs LocationResolver, identities auth.IdentityProvider, profiles ProfileStore, opts Options) *Sequencer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	delay := opts.SettleDelay
	if delay < 0 {
		delay = 0
	}
	return &Sequencer{
		locations:   locs,
		identities:  identities,
		profiles:    profiles,
		settleDelay: delay,
		sleep:       sleepContext,
		now:         time.Now,
		log:         log,
	}
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
	Zone     string
}

type Result struct {
	Identity auth.Identity
	Profile  users.Profile
	Location locations.Location

	// ProfileCreated es false cuando el perfil ya existía (lo creó el backend).
	ProfileCreated bool
}

// Signup no es reintentable de punta a punta: si la identidad ya se creó,
// un segundo intento falla en el proveedor con email duplicado.
func (s *Sequencer) Signup(ctx context.Context, in SignupInput) (Result, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)

	// Validación: sin side effects.
	zone, err := locations.ZoneByCode(in.Zone)
	if err != nil {
		return Result{}, ErrInvalidZone
	}
	if email == "" || in.Password == "" {
		return Result{}, ErrInvalidInput
	}

	log := s.log.With(zap.String("email", email), zap.String("zone", zone.Code))

	// 1) Location
	loc, err := s.locations.ResolveOrCreate(ctx, zone.Name, zone.Country)
	if err != nil {
		log.Error("signup: location resolution failed", zap.Error(err))
		if errors.Is(err, ErrNoLocationAvailable) {
			return Result{}, err
		}
		return Result{}, errors.Join(ErrNoLocationAvailable, err)
	}
	log = log.With(zap.String("location_id", loc.ID))

	// 2) Identidad
	meta := map[string]any{
		"location_id":      loc.ID,
		"location_name":    loc.Name,
		"location_country": loc.Country,
	}
	if fullName != "" {
		meta["full_name"] = fullName
	}
	identity, err := s.identities.CreateIdentity(ctx, auth.CreateIdentityInput{
		Email:    email,
		Password: in.Password,
		Metadata: meta,
	})
	if err != nil {
		log.Info("signup: identity rejected by provider", zap.Error(err))
		return Result{}, &IdentityCreationError{Err: err}
	}
	log = log.With(zap.String("identity_id", identity.ID))

	// 3) Perfil: una sola lectura autoritativa después del settle delay.
	profile, created, err := s.reconcileProfile(ctx, identity, email, fullName, loc.ID)
	if err != nil {
		log.Error("signup: profile creation failed, identity left without profile",
			zap.Bool("reconcile_required", true), zap.Error(err))
		return Result{}, &ProfileCreationError{IdentityID: identity.ID, Err: err}
	}

	log.Info("signup completed", zap.Bool("profile_created", created), zap.String("role", string(profile.Role)))

	return Result{
		Identity:       identity,
		Profile:        profile,
		Location:       s.profileLocation(ctx, log, profile, loc),
		ProfileCreated: created,
	}, nil
}

func (s *Sequencer) reconcileProfile(ctx context.Context, identity auth.Identity, email, fullName, locationID string) (users.Profile, bool, error) {
	if err := s.sleep(ctx, s.settleDelay); err != nil {
		return users.Profile{}, false, err
	}

	existing, err := s.profiles.GetByID(ctx, identity.ID)
	if err == nil {
		// Perfil creado por el backend: se acepta tal cual, sin sobrescribir.
		return existing, false, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return users.Profile{}, false, err
	}

	now := s.now()
	p := users.Profile{
		ID:         identity.ID,
		Email:      email,
		FullName:   fullName,
		Role:       access.RoleViewer,
		LocationID: locationID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		// El trigger terminó entre la lectura y el insert: el perfil existe.
		if errors.Is(err, users.ErrConflict) {
			if existing, getErr := s.profiles.GetByID(ctx, identity.ID); getErr == nil {
				return existing, false, nil
			}
		}
		return users.Profile{}, false, err
	}
	return p, true, nil
}

// profileLocation devuelve la location del perfil aceptado, que puede diferir
// de la resuelta en el paso 1 si el backend creó el perfil con otra.
func (s *Sequencer) profileLocation(ctx context.Context, log *zap.Logger, profile users.Profile, resolved locations.Location) locations.Location {
	if profile.LocationID == "" || profile.LocationID == resolved.ID {
		return resolved
	}
	l, err := s.locations.GetByID(ctx, profile.LocationID)
	if err != nil {
		log.Warn("signup: profile location lookup failed",
			zap.String("profile_location_id", profile.LocationID), zap.Error(err))
		return locations.Location{ID: profile.LocationID}
	}
	return l
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
