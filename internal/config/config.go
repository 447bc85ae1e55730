package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Log          LogConfig
	Auth         AuthConfig
	Provisioning ProvisioningConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig: DSN vacío => repos in-memory.
type DatabaseConfig struct {
	DSN     string
	Migrate bool
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// AuthConfig del proveedor de auth hosteado.
// JWTSecret vacío => modo dev (header X-Debug-User-ID).
// BaseURL vacío => identidades in-memory.
type AuthConfig struct {
	JWTSecret string
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
}

type ProvisioningConfig struct {
	SettleDelay time.Duration
}

// Load lee la configuración del entorno con defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:     getEnv("DB_DSN", ""),
			Migrate: getBoolEnv("DB_MIGRATE", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "stray-rescue"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			BaseURL:   getEnv("AUTH_BASE_URL", ""),
			APIKey:    getEnv("AUTH_API_KEY", ""),
			Timeout:   getDurationEnv("AUTH_TIMEOUT", 10*time.Second),
		},
		Provisioning: ProvisioningConfig{
			SettleDelay: getDurationEnv("PROVISIONING_SETTLE_DELAY", time.Second),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate junta todos los errores en uno.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}
	if c.Database.Migrate && c.Database.DSN == "" {
		errs = append(errs, errors.New("DB_MIGRATE requires DB_DSN"))
	}
	if c.Auth.BaseURL != "" && c.Auth.APIKey == "" {
		errs = append(errs, errors.New("AUTH_API_KEY is required when AUTH_BASE_URL is set"))
	}
	if c.Auth.Timeout <= 0 {
		errs = append(errs, errors.New("AUTH_TIMEOUT must be positive"))
	}
	if c.Provisioning.SettleDelay < 0 {
		errs = append(errs, fmt.Errorf("PROVISIONING_SETTLE_DELAY must not be negative, got %s", c.Provisioning.SettleDelay))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getDurationEnv acepta "1500ms", "2s" o un entero (segundos).
func getDurationEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
