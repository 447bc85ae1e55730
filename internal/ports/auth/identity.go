package auth

import "context"

// AuthVerifier verifica un bearer token y devuelve los claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// IdentityProvider crea identidades (signup) en el proveedor de auth.
// Los errores del proveedor se devuelven tal cual: el mensaje llega al usuario sin cambios.
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, in CreateIdentityInput) (Identity, error)
}
