package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name       string
	Status     access.DogStatus
	Gender     Gender
	Sterilized bool
	Tags       []string
	Notes      string
}

// Create registra un perro en la región actual de quien lo crea.
// Si lo crea un volunteer queda como rescuer; si es un vet, como su vet.
func (s *Service) Create(ctx context.Context, viewer access.Viewer, in CreateInput) (Dog, error) {
	if !access.CanCreateDog(viewer.Role) {
		return Dog{}, access.ErrAccessDenied
	}
	if strings.TrimSpace(viewer.ID) == "" || strings.TrimSpace(viewer.LocationID) == "" {
		return Dog{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Dog{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = access.DogStatusAvailable
	}
	if !status.Valid() {
		return Dog{}, ErrInvalidInput
	}
	gender := in.Gender
	if gender == "" {
		gender = GenderUnknown
	}
	if !gender.Valid() {
		return Dog{}, ErrInvalidInput
	}

	now := s.now()
	d := Dog{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		Status:     status,
		Gender:     gender,
		Sterilized: in.Sterilized,
		LocationID: viewer.LocationID,
		Tags:       normalizeTags(in.Tags),
		Notes:      strings.TrimSpace(in.Notes),
		CreatedBy:  viewer.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	switch viewer.Role {
	case access.RoleVolunteer:
		d.RescuerID = viewer.ID
	case access.RoleVet:
		d.VetID = viewer.ID
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Dog{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetVisible devuelve el perro solo si la política lo permite.
// ErrNotFound y access.ErrAccessDenied son resultados distintos.
func (s *Service) GetVisible(ctx context.Context, viewer access.Viewer, id string) (Dog, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if !access.CanViewDog(viewer.Role, d.Ref(), viewer.ID) {
		return Dog{}, access.ErrAccessDenied
	}
	return d, nil
}

// ListVisible lista los perros de la región actual del viewer que la política deja ver.
func (s *Service) ListVisible(ctx context.Context, viewer access.Viewer, filter ListFilter) ([]Dog, error) {
	if strings.TrimSpace(viewer.LocationID) == "" {
		return []Dog{}, nil
	}
	for _, st := range filter.Statuses {
		if !st.Valid() {
			return nil, ErrInvalidInput
		}
	}

	items, err := s.repo.ListByLocation(ctx, viewer.LocationID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]Dog, 0, len(items))
	for _, d := range items {
		if access.CanViewDog(viewer.Role, d.Ref(), viewer.ID) {
			out = append(out, d)
		}
	}
	return out, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name       *string
	Status     *access.DogStatus
	Gender     *Gender
	Sterilized *bool
	Tags       *[]string
	Notes      *string

	// Asignaciones (solo admin). "" = quitar asignación.
	RescuerID *string
	FosterID  *string
	VetID     *string
	AdopterID *string
}

func (in UpdateInput) touchesAssignments() bool {
	return in.RescuerID != nil || in.FosterID != nil || in.VetID != nil || in.AdopterID != nil
}

func (s *Service) Update(ctx context.Context, viewer access.Viewer, id string, in UpdateInput) (Dog, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if !access.CanEditDog(viewer.Role, d.Ref(), viewer.ID) {
		return Dog{}, access.ErrAccessDenied
	}
	if in.touchesAssignments() && !access.CanAssign(viewer.Role) {
		return Dog{}, access.ErrAccessDenied
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Dog{}, ErrInvalidInput
		}
		d.Name = name
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return Dog{}, ErrInvalidInput
		}
		d.Status = *in.Status
	}
	if in.Gender != nil {
		if !in.Gender.Valid() {
			return Dog{}, ErrInvalidInput
		}
		d.Gender = *in.Gender
	}
	if in.Sterilized != nil {
		d.Sterilized = *in.Sterilized
	}
	if in.Tags != nil {
		d.Tags = normalizeTags(*in.Tags)
	}
	if in.Notes != nil {
		d.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.RescuerID != nil {
		d.RescuerID = strings.TrimSpace(*in.RescuerID)
	}
	if in.FosterID != nil {
		d.FosterID = strings.TrimSpace(*in.FosterID)
	}
	if in.VetID != nil {
		d.VetID = strings.TrimSpace(*in.VetID)
	}
	if in.AdopterID != nil {
		d.AdopterID = strings.TrimSpace(*in.AdopterID)
	}

	d.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// normalizeTags: trim, minúsculas, sin vacíos ni duplicados (orden de entrada).
func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, raw := range in {
		t := strings.ToLower(strings.TrimSpace(raw))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
