package hostedauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stray-rescue/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Verifier implementa auth.AuthVerifier validando los access tokens (HS256)
// que emite el proveedor con el JWT secret del proyecto.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{secret: []byte(secret)}, nil
}

type accessTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var c accessTokenClaims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	// "role" es el rol de Postgres (authenticated/anon), no el rol de la app.
	if c.Role == "anon" {
		return auth.Claims{}, fmt.Errorf("%w: anonymous token", ErrTokenInvalid)
	}

	sub := strings.TrimSpace(c.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", ErrTokenInvalid)
	}

	return auth.Claims{
		UserID: sub,
		Email:  strings.TrimSpace(c.Email),
	}, nil
}
