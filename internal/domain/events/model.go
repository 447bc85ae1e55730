package events

import (
	"time"

	"stray-rescue/internal/domain/access"
)

// Event es una entrada del timeline de un perro. Inmutable una vez creada:
// el privacy level no se sube ni se baja.
type Event struct {
	ID    string
	DogID string

	Type EventType

	Title       string
	Description string

	Privacy access.PrivacyLevel

	CreatedBy string
	CreatedAt time.Time
}
