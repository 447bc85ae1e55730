package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stray-rescue/internal/adapters/auth/hostedauth"
	pg "stray-rescue/internal/adapters/storage/postgres"
	"stray-rescue/internal/config"
	"stray-rescue/internal/platform/logger"
	"stray-rescue/internal/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title Stray Rescue API
// @version 1.0
// @description Rescates de perros callejeros: perros, timeline de eventos, roles y zonas.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Fatal("invalid config", zap.Error(err))
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	opts := router.Options{
		Logger:      log,
		SettleDelay: cfg.Provisioning.SettleDelay,
	}

	var db *sql.DB
	if cfg.Database.DSN != "" {
		db, err = pg.Open(cfg.Database.DSN)
		if err != nil {
			log.Fatal("postgres open failed", zap.Error(err))
		}
		defer db.Close()

		if cfg.Database.Migrate {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err := pg.Migrate(ctx, db)
			cancel()
			if err != nil {
				log.Fatal("postgres migrate failed", zap.Error(err))
			}
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage")
	}

	if cfg.Auth.JWTSecret != "" {
		v, err := hostedauth.NewVerifier(cfg.Auth.JWTSecret)
		if err != nil {
			log.Fatal("auth verifier", zap.Error(err))
		}
		opts.AuthVerifier = v
	} else {
		log.Warn("AUTH_JWT_SECRET not set, dev mode (X-Debug-User-ID)")
	}

	if cfg.Auth.BaseURL != "" {
		client, err := hostedauth.NewClient(hostedauth.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: cfg.Auth.Timeout,
		})
		if err != nil {
			log.Fatal("auth client", zap.Error(err))
		}
		opts.Identity = hostedauth.NewIdentityProvider(client)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
