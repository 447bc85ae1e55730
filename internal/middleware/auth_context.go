package middleware

import (
	"context"
	"net/http"
	"strings"

	"stray-rescue/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// DebugUserHeader solo se respeta sin verifier (modo dev).
const DebugUserHeader = "X-Debug-User-ID"

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext pone los claims en el contexto y nunca corta el request:
// cada handler decide si responde 401.
// Con verifier solo cuenta el Bearer token; sin verifier, el header de debug.
func AuthContext(verifier auth.AuthVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Debug("bearer token rejected",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
