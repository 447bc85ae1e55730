package router

import (
	"database/sql"
	"net/http"
	"time"

	authmem "stray-rescue/internal/adapters/auth/memory"
	mem "stray-rescue/internal/adapters/storage/memory"
	pg "stray-rescue/internal/adapters/storage/postgres"
	_ "stray-rescue/internal/docs"
	"stray-rescue/internal/domain/dogs"
	"stray-rescue/internal/domain/events"
	"stray-rescue/internal/domain/locations"
	"stray-rescue/internal/domain/provisioning"
	"stray-rescue/internal/domain/users"
	"stray-rescue/internal/middleware"
	"stray-rescue/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Proveedor de identidades para el signup. nil => in-memory.
	Identity auth.IdentityProvider

	Logger *zap.Logger

	// Espera antes de leer el perfil en el signup. 0 = sin espera.
	SettleDelay time.Duration

	// Overrides de repos (tests). Tienen prioridad sobre DB.
	Locations locations.Repository
	Users     users.Repository
	Dogs      dogs.Repository
	Events    events.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log.Named("auth")))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		locRepo   locations.Repository
		userRepo  users.Repository
		dogRepo   dogs.Repository
		eventRepo events.Repository
	)

	if opts.DB != nil {
		locRepo = pg.NewLocationsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		dogRepo = pg.NewDogsRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	} else {
		locRepo = mem.NewLocationRepo()
		userRepo = mem.NewUserRepo()
		dogRepo = mem.NewDogRepo()
		eventRepo = mem.NewEventRepo()
	}

	if opts.Locations != nil {
		locRepo = opts.Locations
	}
	if opts.Users != nil {
		userRepo = opts.Users
	}
	if opts.Dogs != nil {
		dogRepo = opts.Dogs
	}
	if opts.Events != nil {
		eventRepo = opts.Events
	}

	identity := opts.Identity
	if identity == nil {
		log.Warn("no identity provider configured, using in-memory identities")
		identity = authmem.NewIdentityProvider()
	}

	// Services por módulo
	locationsSvc := locations.NewService(locRepo, log.Named("locations"))
	usersSvc := users.NewService(userRepo, locationsSvc, log.Named("users"))
	dogsSvc := dogs.NewService(dogRepo)
	eventsSvc := events.NewService(eventRepo)
	seq := provisioning.NewSequencer(locationsSvc, identity, userRepo, provisioning.Options{
		SettleDelay: opts.SettleDelay,
		Logger:      log.Named("provisioning"),
	})

	// Rutas por módulo
	locations.RegisterRoutes(r, locationsSvc)
	provisioning.RegisterRoutes(r, seq)
	users.RegisterRoutes(r, usersSvc)
	dogs.RegisterRoutes(r, dogsSvc, usersSvc)
	events.RegisterRoutes(r, eventsSvc, dogsSvc, usersSvc)

	return r
}
