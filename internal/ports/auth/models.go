package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
}

// Identity es la identidad creada en el proveedor de auth.
// Su ID es también el ID del perfil de usuario.
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// CreateIdentityInput: Metadata viaja como user metadata al proveedor
// (full_name, location_id, location_name, location_country).
type CreateIdentityInput struct {
	Email    string
	Password string
	Metadata map[string]any
}
