package access

import "strings"

// Role es el único eje de la política de acceso.
// @Enum admin, volunteer, vet, viewer
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
	RoleVet       Role = "vet"
	RoleViewer    Role = "viewer"

	// RoleUnknown representa cualquier valor fuera de los cuatro roles.
	// Se evalúa siempre con el mínimo privilegio.
	RoleUnknown Role = ""
)

// ParseRole normaliza un rol. Valores desconocidos => RoleUnknown.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleVolunteer:
		return RoleVolunteer
	case RoleVet:
		return RoleVet
	case RoleViewer:
		return RoleViewer
	default:
		return RoleUnknown
	}
}

func (r Role) Valid() bool {
	return ParseRole(string(r)) != RoleUnknown
}

// DogStatus define el estado de un perro rescatado.
// @Enum available, fostered, adopted, injured, missing, hidden, deceased
type DogStatus string

const (
	DogStatusAvailable DogStatus = "available"
	DogStatusFostered  DogStatus = "fostered"
	DogStatusAdopted   DogStatus = "adopted"
	DogStatusInjured   DogStatus = "injured"
	DogStatusMissing   DogStatus = "missing"
	DogStatusHidden    DogStatus = "hidden"
	DogStatusDeceased  DogStatus = "deceased"
)

func (s DogStatus) Valid() bool {
	switch s {
	case DogStatusAvailable, DogStatusFostered, DogStatusAdopted, DogStatusInjured,
		DogStatusMissing, DogStatusHidden, DogStatusDeceased:
		return true
	default:
		return false
	}
}

// PrivacyLevel es el nivel de visibilidad de un evento del timeline.
// @Enum public, private, sensitive
type PrivacyLevel string

const (
	PrivacyPublic    PrivacyLevel = "public"
	PrivacyPrivate   PrivacyLevel = "private"
	PrivacySensitive PrivacyLevel = "sensitive"
)

func (p PrivacyLevel) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyPrivate, PrivacySensitive:
		return true
	default:
		return false
	}
}

// Viewer es quien hace la request, ya resuelto contra su perfil.
type Viewer struct {
	ID         string
	Role       Role
	LocationID string
}

// DogRef son los atributos de un perro que la política necesita.
// Se usa para no importar el paquete dogs (rompe ciclos).
type DogRef struct {
	Status    DogStatus
	RescuerID string
	FosterID  string
	VetID     string
}
