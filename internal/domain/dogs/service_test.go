package dogs

import (
	"context"
	"sort"
	"testing"
	"time"

	"stray-rescue/internal/domain/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Dog
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dog{}}
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *testRepo) ListByLocation(ctx context.Context, locationID string, filter ListFilter) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		if d.LocationID == locationID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var (
	admin     = access.Viewer{ID: "A1", Role: access.RoleAdmin, LocationID: "loc-1"}
	volunteer = access.Viewer{ID: "V1", Role: access.RoleVolunteer, LocationID: "loc-1"}
	vet       = access.Viewer{ID: "T1", Role: access.RoleVet, LocationID: "loc-1"}
	viewer    = access.Viewer{ID: "U1", Role: access.RoleViewer, LocationID: "loc-1"}
)

func TestCreate_VolunteerBecomesRescuer(t *testing.T) {
	svc := NewService(newTestRepo())

	d, err := svc.Create(context.Background(), volunteer, CreateInput{Name: " Luna ", Tags: []string{"Beach", "beach", " "}})
	require.NoError(t, err)

	assert.Equal(t, "Luna", d.Name)
	assert.Equal(t, "V1", d.RescuerID)
	assert.Equal(t, "loc-1", d.LocationID)
	assert.Equal(t, access.DogStatusAvailable, d.Status)
	assert.Equal(t, GenderUnknown, d.Gender)
	assert.Equal(t, []string{"beach"}, d.Tags)
}

func TestCreate_VetBecomesAssignedVet(t *testing.T) {
	svc := NewService(newTestRepo())

	d, err := svc.Create(context.Background(), vet, CreateInput{Name: "Rex", Status: access.DogStatusMissing})
	require.NoError(t, err)
	assert.Equal(t, "T1", d.VetID)
	assert.Empty(t, d.RescuerID)

	got, err := svc.GetVisible(context.Background(), vet, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	notes := "microchip leído"
	got, err = svc.Update(context.Background(), vet, d.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
}

func TestCreate_ViewerDenied(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), viewer, CreateInput{Name: "Luna"})
	assert.ErrorIs(t, err, access.ErrAccessDenied)
}

func TestCreate_InvalidStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), admin, CreateInput{Name: "Luna", Status: "lost"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVisible_NotFoundVsDenied(t *testing.T) {
	repo := newTestRepo()
	repo.byID["d-1"] = Dog{ID: "d-1", Status: access.DogStatusHidden, LocationID: "loc-1"}
	svc := NewService(repo)

	_, err := svc.GetVisible(context.Background(), viewer, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetVisible(context.Background(), viewer, "d-1")
	assert.ErrorIs(t, err, access.ErrAccessDenied)

	d, err := svc.GetVisible(context.Background(), admin, "d-1")
	require.NoError(t, err)
	assert.Equal(t, "d-1", d.ID)
}

func TestGetVisible_FosterOverridesHidden(t *testing.T) {
	repo := newTestRepo()
	repo.byID["d-1"] = Dog{ID: "d-1", Status: access.DogStatusHidden, FosterID: "V1"}
	svc := NewService(repo)

	_, err := svc.GetVisible(context.Background(), volunteer, "d-1")
	assert.NoError(t, err)
}

func TestListVisible_FiltersByPolicyAndRegion(t *testing.T) {
	repo := newTestRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.byID["a"] = Dog{ID: "a", Status: access.DogStatusAvailable, LocationID: "loc-1", CreatedAt: base}
	repo.byID["h"] = Dog{ID: "h", Status: access.DogStatusHidden, LocationID: "loc-1", CreatedAt: base.Add(time.Hour)}
	repo.byID["x"] = Dog{ID: "x", Status: access.DogStatusAdopted, LocationID: "loc-1", CreatedAt: base.Add(2 * time.Hour)}
	repo.byID["o"] = Dog{ID: "o", Status: access.DogStatusAvailable, LocationID: "loc-2", CreatedAt: base}
	svc := NewService(repo)

	items, err := svc.ListVisible(context.Background(), viewer, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a"}, dogIDs(items))

	items, err = svc.ListVisible(context.Background(), vet, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, dogIDs(items))

	items, err = svc.ListVisible(context.Background(), admin, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "h", "a"}, dogIDs(items))
}

func TestUpdate_AssignmentsAdminOnly(t *testing.T) {
	repo := newTestRepo()
	repo.byID["d-1"] = Dog{ID: "d-1", Status: access.DogStatusInjured, RescuerID: "V1"}
	svc := NewService(repo)

	foster := "V2"
	_, err := svc.Update(context.Background(), volunteer, "d-1", UpdateInput{FosterID: &foster})
	assert.ErrorIs(t, err, access.ErrAccessDenied)

	d, err := svc.Update(context.Background(), admin, "d-1", UpdateInput{FosterID: &foster})
	require.NoError(t, err)
	assert.Equal(t, "V2", d.FosterID)

	st := access.DogStatusFostered
	d, err = svc.Update(context.Background(), volunteer, "d-1", UpdateInput{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, access.DogStatusFostered, d.Status)
}

func TestUpdate_VetNotAssignedDenied(t *testing.T) {
	repo := newTestRepo()
	repo.byID["d-1"] = Dog{ID: "d-1", Status: access.DogStatusInjured, VetID: "T2"}
	svc := NewService(repo)

	notes := "x-ray ok"
	_, err := svc.Update(context.Background(), vet, "d-1", UpdateInput{Notes: &notes})
	assert.ErrorIs(t, err, access.ErrAccessDenied)
}

func dogIDs(items []Dog) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, d.ID)
	}
	return out
}
