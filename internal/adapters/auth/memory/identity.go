package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"stray-rescue/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// Mismos textos que devuelve el proveedor hosteado.
var (
	ErrEmailTaken    = errors.New("User already registered")
	ErrWeakPassword  = errors.New("Password should be at least 6 characters")
	ErrInvalidEmail  = errors.New("Unable to validate email address: invalid format")
	ErrEmptyPassword = errors.New("Signup requires a valid password")
)

type identityRecord struct {
	identity auth.Identity
	hash     []byte
	metadata map[string]any
}

// IdentityProvider es un proveedor de auth in-memory para dev/tests.
type IdentityProvider struct {
	mu      sync.RWMutex
	byEmail map[string]identityRecord

	// AfterCreate simula un trigger del backend que corre al crear la identidad
	// (p.ej. el que inserta el perfil automáticamente). Opcional.
	AfterCreate func(ctx context.Context, id auth.Identity, metadata map[string]any)

	cost int
	now  func() time.Time
}

func NewIdentityProvider() *IdentityProvider {
	return &IdentityProvider{
		byEmail: make(map[string]identityRecord),
		cost:    bcrypt.MinCost,
		now:     time.Now,
	}
}

func (p *IdentityProvider) CreateIdentity(ctx context.Context, in auth.CreateIdentityInput) (auth.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return auth.Identity{}, ErrInvalidEmail
	}
	if in.Password == "" {
		return auth.Identity{}, ErrEmptyPassword
	}
	if len(in.Password) < minPasswordLen {
		return auth.Identity{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cost)
	if err != nil {
		return auth.Identity{}, err
	}

	p.mu.Lock()
	if _, exists := p.byEmail[email]; exists {
		p.mu.Unlock()
		return auth.Identity{}, ErrEmailTaken
	}
	id := auth.Identity{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: p.now(),
	}
	meta := make(map[string]any, len(in.Metadata))
	for k, v := range in.Metadata {
		meta[k] = v
	}
	p.byEmail[email] = identityRecord{identity: id, hash: hash, metadata: meta}
	p.mu.Unlock()

	if p.AfterCreate != nil {
		p.AfterCreate(ctx, id, meta)
	}
	return id, nil
}

// Count devuelve cuántas identidades existen.
func (p *IdentityProvider) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byEmail)
}
