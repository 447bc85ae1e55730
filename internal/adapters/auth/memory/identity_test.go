package memory

import (
	"context"
	"testing"

	"stray-rescue/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIdentity_RejectsDuplicateEmail(t *testing.T) {
	p := NewIdentityProvider()

	_, err := p.CreateIdentity(context.Background(), auth.CreateIdentityInput{Email: "Ana@Example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = p.CreateIdentity(context.Background(), auth.CreateIdentityInput{Email: "ana@example.com", Password: "secret456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, p.Count())
}

func TestCreateIdentity_Validation(t *testing.T) {
	p := NewIdentityProvider()

	_, err := p.CreateIdentity(context.Background(), auth.CreateIdentityInput{Email: "ana@example.com", Password: "123"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = p.CreateIdentity(context.Background(), auth.CreateIdentityInput{Email: "not-an-email", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	assert.Equal(t, 0, p.Count())
}

func TestCreateIdentity_RunsAfterCreateHook(t *testing.T) {
	p := NewIdentityProvider()

	var gotMeta map[string]any
	var gotID string
	p.AfterCreate = func(ctx context.Context, id auth.Identity, metadata map[string]any) {
		gotID = id.ID
		gotMeta = metadata
	}

	id, err := p.CreateIdentity(context.Background(), auth.CreateIdentityInput{
		Email:    "ana@example.com",
		Password: "secret123",
		Metadata: map[string]any{"location_id": "loc-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, id.ID, gotID)
	assert.Equal(t, "loc-1", gotMeta["location_id"])
}
