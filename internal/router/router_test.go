package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mem "stray-rescue/internal/adapters/storage/memory"
	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	url   string
	users *mem.UserRepo
	locs  *mem.LocationRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := mem.NewUserRepo()
	locs := mem.NewLocationRepo()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Users:        users,
		Locations:    locs,
	}))
	t.Cleanup(ts.Close)

	return &testServer{url: ts.URL, users: users, locs: locs}
}

type signupResult struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Location struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	ProfileCreated bool `json:"profile_created"`
}

func (s *testServer) signup(t *testing.T, email, zone string) signupResult {
	t.Helper()

	st, body := doReq(t, s.url, "POST", "/auth/signup", "", map[string]any{
		"email":     email,
		"password":  "secret123",
		"full_name": strings.Split(email, "@")[0],
		"zone":      zone,
	})
	require.Equal(t, http.StatusCreated, st, "signup body=%s", string(body))

	var out signupResult
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// promote cambia el rol directo en el repo (bootstrap del primer admin).
func (s *testServer) promote(t *testing.T, userID string, role access.Role) {
	t.Helper()
	require.NoError(t, s.users.UpdateRole(context.Background(), userID, role, time.Now()))
}

func TestHTTP_Signup(t *testing.T) {
	s := newTestServer(t)

	first := s.signup(t, "ana@example.com", "koh-phangan")
	assert.Equal(t, "viewer", first.Role)
	assert.Equal(t, "Koh Phangan", first.Location.Name)
	assert.Equal(t, "Thailand", first.Location.Country)
	assert.True(t, first.ProfileCreated)

	second := s.signup(t, "ben@example.com", "koh-phangan")
	assert.Equal(t, first.Location.ID, second.Location.ID)
	assert.Equal(t, 1, s.locs.Count())

	// perfil visible vía /me
	{
		st, body := doReq(t, s.url, "GET", "/me", first.UserID, nil)
		require.Equal(t, http.StatusOK, st, "body=%s", string(body))

		var me map[string]any
		require.NoError(t, json.Unmarshal(body, &me))
		assert.Equal(t, first.Location.ID, me["location_id"])
		assert.Equal(t, "viewer", me["role"])
	}

	// zona inválida: 400 y sin side effects
	{
		st, _ := doReq(t, s.url, "POST", "/auth/signup", "", map[string]any{
			"email": "x@example.com", "password": "secret123", "zone": "atlantis",
		})
		assert.Equal(t, http.StatusBadRequest, st)
		assert.Equal(t, 1, s.locs.Count())
	}

	// email duplicado: 422 con el mensaje del proveedor
	{
		st, body := doReq(t, s.url, "POST", "/auth/signup", "", map[string]any{
			"email": "ana@example.com", "password": "secret123", "zone": "koh-phangan",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, st)
		assert.Equal(t, "User already registered", strings.TrimSpace(string(body)))
	}

	// /zones y /locations son públicos
	{
		st, body := doReq(t, s.url, "GET", "/zones", "", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), "koh-phangan")

		st, body = doReq(t, s.url, "GET", "/locations", "", nil)
		require.Equal(t, http.StatusOK, st)

		var locs []map[string]any
		require.NoError(t, json.Unmarshal(body, &locs))
		assert.Len(t, locs, 1)

		st, body = doReq(t, s.url, "GET", "/locations/"+first.Location.ID, "", nil)
		require.Equal(t, http.StatusOK, st, "body=%s", string(body))

		var loc map[string]any
		require.NoError(t, json.Unmarshal(body, &loc))
		assert.Equal(t, "Koh Phangan", loc["name"])

		st, _ = doReq(t, s.url, "GET", "/locations/does-not-exist", "", nil)
		assert.Equal(t, http.StatusNotFound, st)
	}
}

func TestHTTP_DogAndEventVisibility(t *testing.T) {
	s := newTestServer(t)

	admin := s.signup(t, "admin@example.com", "koh-phangan")
	s.promote(t, admin.UserID, access.RoleAdmin)
	viewer := s.signup(t, "viewer@example.com", "koh-phangan")
	volunteer := s.signup(t, "vol@example.com", "koh-phangan")
	vet := s.signup(t, "vet@example.com", "koh-phangan")

	// roles vía endpoint de admin
	setRole(t, s.url, admin.UserID, volunteer.UserID, "volunteer")
	setRole(t, s.url, admin.UserID, vet.UserID, "vet")

	available := createDog(t, s.url, admin.UserID, map[string]any{"name": "Luna", "status": "available"})
	hidden := createDog(t, s.url, admin.UserID, map[string]any{"name": "Shadow", "status": "hidden"})

	// viewer: no ve el perro oculto
	{
		st, _ := doReq(t, s.url, "GET", "/dogs/"+hidden, viewer.UserID, nil)
		assert.Equal(t, http.StatusForbidden, st)

		ids := listDogIDs(t, s.url, viewer.UserID)
		assert.Equal(t, []string{available}, ids)
	}

	// volunteer asignado como foster ve el perro oculto
	{
		st, _ := doReq(t, s.url, "GET", "/dogs/"+hidden, volunteer.UserID, nil)
		assert.Equal(t, http.StatusForbidden, st)

		st, body := doReq(t, s.url, "PATCH", "/dogs/"+hidden, admin.UserID, map[string]any{
			"foster_id": volunteer.UserID,
		})
		require.Equal(t, http.StatusOK, st, "body=%s", string(body))

		st, _ = doReq(t, s.url, "GET", "/dogs/"+hidden, volunteer.UserID, nil)
		assert.Equal(t, http.StatusOK, st)
		assert.Len(t, listDogIDs(t, s.url, volunteer.UserID), 2)
	}

	// solo admin asigna
	{
		st, _ := doReq(t, s.url, "PATCH", "/dogs/"+hidden, volunteer.UserID, map[string]any{
			"vet_id": vet.UserID,
		})
		assert.Equal(t, http.StatusForbidden, st)
	}

	// eventos con los tres niveles
	createEvent(t, s.url, admin.UserID, available, map[string]any{"title": "rescued", "event_type": "rescue", "privacy_level": "public"})
	createEvent(t, s.url, admin.UserID, available, map[string]any{"title": "checkup", "event_type": "medical", "privacy_level": "private"})
	sensitiveID := createEvent(t, s.url, admin.UserID, available, map[string]any{"title": "owner dispute", "privacy_level": "sensitive"})

	assert.Len(t, listEvents(t, s.url, viewer.UserID, available), 1)
	assert.Len(t, listEvents(t, s.url, volunteer.UserID, available), 2)
	assert.Len(t, listEvents(t, s.url, vet.UserID, available), 2)
	assert.Len(t, listEvents(t, s.url, admin.UserID, available), 3)

	// lectura directa de un evento sensible
	{
		st, _ := doReq(t, s.url, "GET", "/dogs/"+available+"/events/"+sensitiveID, viewer.UserID, nil)
		assert.Equal(t, http.StatusForbidden, st)

		st, _ = doReq(t, s.url, "GET", "/dogs/"+available+"/events/"+sensitiveID, admin.UserID, nil)
		assert.Equal(t, http.StatusOK, st)

		st, _ = doReq(t, s.url, "GET", "/dogs/"+hidden+"/events/"+sensitiveID, admin.UserID, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}

	// perro sin eventos: lista vacía, no 404
	{
		st, body := doReq(t, s.url, "GET", "/dogs/"+hidden+"/events", admin.UserID, nil)
		require.Equal(t, http.StatusOK, st)
		assert.Equal(t, "[]", strings.TrimSpace(string(body)))
	}

	// viewer no crea eventos
	{
		st, _ := doReq(t, s.url, "POST", "/dogs/"+available+"/events", viewer.UserID, map[string]any{"title": "hi"})
		assert.Equal(t, http.StatusForbidden, st)
	}

	// volunteer no puede escribir un nivel que no podría leer
	{
		st, _ := doReq(t, s.url, "POST", "/dogs/"+available+"/events", volunteer.UserID, map[string]any{
			"title": "secret", "privacy_level": "sensitive",
		})
		assert.Equal(t, http.StatusForbidden, st)
	}

	// sin usuario
	{
		st, _ := doReq(t, s.url, "GET", "/dogs", "", nil)
		assert.Equal(t, http.StatusUnauthorized, st)
	}
}

func TestHTTP_RolesAndLocationSwitch(t *testing.T) {
	s := newTestServer(t)

	admin := s.signup(t, "admin@example.com", "koh-phangan")
	s.promote(t, admin.UserID, access.RoleAdmin)
	user := s.signup(t, "user@example.com", "koh-phangan")

	createDog(t, s.url, admin.UserID, map[string]any{"name": "Luna"})
	assert.Len(t, listDogIDs(t, s.url, user.UserID), 1)

	// un viewer no cambia roles
	{
		st, _ := doReq(t, s.url, "PATCH", "/users/"+admin.UserID+"/role", user.UserID, map[string]any{"role": "viewer"})
		assert.Equal(t, http.StatusForbidden, st)
	}

	// rol inexistente
	{
		st, _ := doReq(t, s.url, "PATCH", "/users/"+user.UserID+"/role", admin.UserID, map[string]any{"role": "superuser"})
		assert.Equal(t, http.StatusBadRequest, st)
	}

	// cambio de zona: la lista se filtra por la nueva región
	{
		st, body := doReq(t, s.url, "PATCH", "/me/location", user.UserID, map[string]any{"zone": "bali"})
		require.Equal(t, http.StatusOK, st, "body=%s", string(body))
		assert.Equal(t, 2, s.locs.Count())
		assert.Empty(t, listDogIDs(t, s.url, user.UserID))

		st, _ = doReq(t, s.url, "PATCH", "/me/location", user.UserID, map[string]any{"zone": "atlantis"})
		assert.Equal(t, http.StatusBadRequest, st)
	}
}

func TestHTTP_Health(t *testing.T) {
	s := newTestServer(t)

	st, body := doReq(t, s.url, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))
}

// helpers

func setRole(t *testing.T, baseURL, adminID, userID, role string) {
	t.Helper()
	st, body := doReq(t, baseURL, "PATCH", "/users/"+userID+"/role", adminID, map[string]any{"role": role})
	require.Equal(t, http.StatusOK, st, "set role body=%s", string(body))
}

func createDog(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", userID, payload)
	require.Equal(t, http.StatusCreated, st, "create dog body=%s", string(body))

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func listDogIDs(t *testing.T, baseURL, userID string) []string {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/dogs", userID, nil)
	require.Equal(t, http.StatusOK, st, "list dogs body=%s", string(body))

	var out []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))

	ids := make([]string, 0, len(out))
	for _, d := range out {
		ids = append(ids, d.ID)
	}
	return ids
}

func createEvent(t *testing.T, baseURL, userID, dogID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs/"+dogID+"/events", userID, payload)
	require.Equal(t, http.StatusCreated, st, "create event body=%s", string(body))

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.ID
}

func listEvents(t *testing.T, baseURL, userID, dogID string) []map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/dogs/"+dogID+"/events", userID, nil)
	require.Equal(t, http.StatusOK, st, "list events body=%s", string(body))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
