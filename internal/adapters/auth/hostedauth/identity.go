package hostedauth

import (
	"context"

	"stray-rescue/internal/ports/auth"
)

// IdentityProvider implementa auth.IdentityProvider contra el proveedor hosteado.
type IdentityProvider struct {
	client *Client
}

func NewIdentityProvider(client *Client) *IdentityProvider {
	return &IdentityProvider{client: client}
}

func (p *IdentityProvider) CreateIdentity(ctx context.Context, in auth.CreateIdentityInput) (auth.Identity, error) {
	if p == nil || p.client == nil {
		return auth.Identity{}, ErrNotConfigured
	}
	return p.client.SignUp(ctx, in.Email, in.Password, in.Metadata)
}
