package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Zones(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"zones"}, &out))

	assert.Contains(t, out.String(), "koh-phangan")
	assert.Contains(t, out.String(), "Koh Phangan")
	assert.Contains(t, out.String(), "Indonesia")
}

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)
}

func TestPromote_ValidatesBeforeConnecting(t *testing.T) {
	t.Setenv("DB_DSN", "")

	err := run(context.Background(), []string{"promote", "--user-id", "u1", "--role", "root"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")

	err = run(context.Background(), []string{"promote", "--role", "vet"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user-id")

	err = run(context.Background(), []string{"promote", "--user-id", "u1"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestMigrate_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	err := run(context.Background(), []string{"migrate"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}
