package provisioning

import (
	"errors"
	"fmt"

	"stray-rescue/internal/domain/locations"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidZone: zona fuera del mapeo fijo. Se corta antes de cualquier side effect.
	ErrInvalidZone = locations.ErrInvalidZone

	// ErrNoLocationAvailable: falló el insert y no hay location de fallback.
	ErrNoLocationAvailable = locations.ErrNoLocationAvailable
)

// IdentityCreationError: el proveedor rechazó el signup. Error() devuelve el
// mensaje del proveedor sin tocar. La location del paso 1 queda creada.
type IdentityCreationError struct {
	Err error
}

func (e *IdentityCreationError) Error() string {
	return e.Err.Error()
}

func (e *IdentityCreationError) Unwrap() error {
	return e.Err
}

// ProfileCreationError: la identidad existe pero el perfil no. Estado inconsistente
// que se reconcilia fuera de banda usando IdentityID; no hay rollback automático.
type ProfileCreationError struct {
	IdentityID string
	Err        error
}

func (e *ProfileCreationError) Error() string {
	return fmt.Sprintf("profile creation failed for identity %s: %v", e.IdentityID, e.Err)
}

func (e *ProfileCreationError) Unwrap() error {
	return e.Err
}
