package hostedauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stray-rescue/internal/platform/httpclient"
	"stray-rescue/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("hosted auth client not configured")
	ErrUpstream      = errors.New("hosted auth upstream error")
)

// Config del proveedor de auth del backend hosteado (API estilo GoTrue).
// BaseURL y APIKey vienen de env vars (AUTH_BASE_URL / AUTH_API_KEY).
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header de la API key. Default "apikey".
	APIKeyHeader string

	Timeout time.Duration
}

// ProviderError es un rechazo del proveedor (email duplicado, password débil...).
// Message se propaga sin modificar hasta el usuario.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "apikey"
	}

	hc, err := httpclient.New(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	hc.Headers[h] = strings.TrimSpace(cfg.APIKey)
	hc.Headers["Authorization"] = "Bearer " + strings.TrimSpace(cfg.APIKey)

	return &Client{http: hc}, nil
}

type signupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type userPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// signupResponse: con confirmación de email el proveedor devuelve el user plano;
// sin confirmación devuelve una sesión con el user anidado.
type signupResponse struct {
	userPayload
	User *userPayload `json:"user"`
}

// SignUp crea la identidad. Data viaja como user metadata.
func (c *Client) SignUp(ctx context.Context, email, password string, data map[string]any) (auth.Identity, error) {
	if c == nil || c.http == nil {
		return auth.Identity{}, ErrNotConfigured
	}

	var out signupResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/v1/signup", signupRequest{
		Email:    email,
		Password: password,
		Data:     data,
	}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			return auth.Identity{}, toProviderError(he)
		}
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	u := out.userPayload
	if out.User != nil {
		u = *out.User
	}
	if strings.TrimSpace(u.ID) == "" {
		return auth.Identity{}, fmt.Errorf("%w: signup response missing user id", ErrUpstream)
	}

	return auth.Identity{
		ID:        strings.TrimSpace(u.ID),
		Email:     strings.TrimSpace(u.Email),
		CreatedAt: u.CreatedAt,
	}, nil
}

// toProviderError extrae el mensaje del proveedor. Según versión viene en
// "msg", "error_description", "message" o "error".
func toProviderError(he *httpclient.HTTPError) *ProviderError {
	var body struct {
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	msg := he.Body
	if err := json.Unmarshal([]byte(he.Body), &body); err == nil {
		for _, m := range []string{body.Msg, body.ErrorDescription, body.Message, body.Error} {
			if strings.TrimSpace(m) != "" {
				msg = m
				break
			}
		}
	}
	if strings.TrimSpace(msg) == "" {
		msg = http.StatusText(he.StatusCode)
	}
	return &ProviderError{StatusCode: he.StatusCode, Message: msg}
}
