package users

import (
	"time"

	"stray-rescue/internal/domain/access"
)

// Profile es el perfil de usuario, 1:1 con una identidad del proveedor de auth.
// ID == id de la identidad.
type Profile struct {
	ID       string
	Email    string
	FullName string

	Role access.Role

	// LocationID es la región actual (se cambia con location switching).
	LocationID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
