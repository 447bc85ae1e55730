package access

import "errors"

var (
	// ErrAccessDenied: el caller debe cortar el render, no degradar a una vista parcial.
	ErrAccessDenied = errors.New("access denied")
)

// CanViewDog decide si viewerID (con role) puede ver el perro.
// Cualquier rol fuera de los cuatro conocidos falla cerrado.
func CanViewDog(role Role, dog DogRef, viewerID string) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleViewer:
		return dog.Status != DogStatusHidden
	case RoleVolunteer:
		if owns(viewerID, dog.RescuerID) || owns(viewerID, dog.FosterID) {
			return true
		}
		return dog.Status != DogStatusHidden
	case RoleVet:
		if owns(viewerID, dog.VetID) {
			return true
		}
		switch dog.Status {
		case DogStatusInjured, DogStatusAvailable, DogStatusFostered:
			return true
		}
		return false
	default:
		return false
	}
}

// VisiblePrivacyLevels devuelve los privacy levels que el rol puede leer.
// Se pasa al repositorio como predicado de la query, no como filtro post-fetch.
func VisiblePrivacyLevels(role Role) []PrivacyLevel {
	switch role {
	case RoleAdmin:
		return []PrivacyLevel{PrivacyPublic, PrivacyPrivate, PrivacySensitive}
	case RoleVolunteer, RoleVet:
		return []PrivacyLevel{PrivacyPublic, PrivacyPrivate}
	default:
		// viewer y cualquier rol desconocido
		return []PrivacyLevel{PrivacyPublic}
	}
}

func CanReadPrivacy(role Role, level PrivacyLevel) bool {
	for _, l := range VisiblePrivacyLevels(role) {
		if l == level {
			return true
		}
	}
	return false
}

// CanEditDog: admin siempre; volunteer si rescató o acoge; vet si es su vet.
func CanEditDog(role Role, dog DogRef, viewerID string) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleVolunteer:
		return owns(viewerID, dog.RescuerID) || owns(viewerID, dog.FosterID)
	case RoleVet:
		return owns(viewerID, dog.VetID)
	default:
		return false
	}
}

func CanCreateDog(role Role) bool {
	switch role {
	case RoleAdmin, RoleVolunteer, RoleVet:
		return true
	default:
		return false
	}
}

// CanAssign: solo admin cambia rescuer/foster/vet/adopter.
func CanAssign(role Role) bool {
	return role == RoleAdmin
}

func CanManageRoles(role Role) bool {
	return role == RoleAdmin
}

// CanCreateEvent exige ver el perro, no ser viewer, y no escribir un nivel
// de privacidad que el propio rol no podría leer.
func CanCreateEvent(role Role, dog DogRef, viewerID string, level PrivacyLevel) bool {
	if role == RoleViewer || !role.Valid() {
		return false
	}
	if !CanViewDog(role, dog, viewerID) {
		return false
	}
	return CanReadPrivacy(role, level)
}

func owns(viewerID, relatedID string) bool {
	return viewerID != "" && relatedID == viewerID
}
