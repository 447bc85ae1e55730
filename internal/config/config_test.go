package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DB_DSN", "DB_MIGRATE", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
		"AUTH_JWT_SECRET", "AUTH_BASE_URL", "AUTH_API_KEY", "AUTH_TIMEOUT",
		"PROVISIONING_SETTLE_DELAY", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, time.Second, cfg.Provisioning.SettleDelay)
	assert.Equal(t, "stray-rescue", cfg.Log.App)
	assert.Empty(t, cfg.Database.DSN)
	assert.Empty(t, cfg.Auth.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROVISIONING_SETTLE_DELAY", "250ms")
	t.Setenv("AUTH_TIMEOUT", "3")
	t.Setenv("AUTH_BASE_URL", "https://auth.example.com")
	t.Setenv("AUTH_API_KEY", "anon-key")
	t.Setenv("DB_DSN", "postgres://localhost/rescue")
	t.Setenv("DB_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Provisioning.SettleDelay)
	assert.Equal(t, 3*time.Second, cfg.Auth.Timeout)
	assert.True(t, cfg.Database.Migrate)
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := &Config{
		Server:       ServerConfig{Port: "", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Database:     DatabaseConfig{Migrate: true},
		Auth:         AuthConfig{BaseURL: "https://auth.example.com", Timeout: time.Second},
		Provisioning: ProvisioningConfig{SettleDelay: -time.Second},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT is required")
	assert.Contains(t, err.Error(), "DB_MIGRATE requires DB_DSN")
	assert.Contains(t, err.Error(), "AUTH_API_KEY")
	assert.Contains(t, err.Error(), "PROVISIONING_SETTLE_DELAY")
}
