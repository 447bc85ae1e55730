package dogs

import (
	"time"

	"stray-rescue/internal/domain/access"
)

// Gender define el sexo del perro.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	default:
		return false
	}
}

// Dog es el registro de un perro rescatado. Pertenece a una sola Location.
// Los IDs de relación (rescuer/foster/vet/adopter) vacíos significan "sin asignar".
type Dog struct {
	ID   string
	Name string

	Status     access.DogStatus
	Gender     Gender
	Sterilized bool

	LocationID string

	RescuerID string
	FosterID  string
	VetID     string
	AdopterID string

	Tags  []string
	Notes string

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref devuelve lo que la política de acceso necesita del perro.
func (d Dog) Ref() access.DogRef {
	return access.DogRef{
		Status:    d.Status,
		RescuerID: d.RescuerID,
		FosterID:  d.FosterID,
		VetID:     d.VetID,
	}
}
