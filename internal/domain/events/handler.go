package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/dogs"
	"stray-rescue/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// ViewerLookup evita importar el paquete users (rompe ciclos).
type ViewerLookup interface {
	ViewerOf(ctx context.Context, userID string) (access.Viewer, error)
}

func RegisterRoutes(r chi.Router, svc *Service, dogsSvc *dogs.Service, viewers ViewerLookup) {
	r.Route("/dogs/{dogID}/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, dogsSvc, viewers))
		er.Get("/", listEventsHandler(svc, dogsSvc, viewers))
		er.Get("/{eventID}", getEventHandler(svc, dogsSvc, viewers))
	})
}

// createEventRequest es el cuerpo de la solicitud para registrar un evento en el timeline.
type createEventRequest struct {
	Type         EventType           `json:"event_type" enums:"rescue,medical,vaccination,sterilization,foster,adoption,sighting,status_change,note"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	PrivacyLevel access.PrivacyLevel `json:"privacy_level" enums:"public,private,sensitive"` // opcional, default public
}

// eventResponse representa un evento del timeline devuelto por la API.
type eventResponse struct {
	ID           string              `json:"id"`
	DogID        string              `json:"dog_id"`
	Type         EventType           `json:"event_type"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	PrivacyLevel access.PrivacyLevel `json:"privacy_level"`
	CreatedBy    string              `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
}

// createEventHandler godoc
// @Summary Crear evento del timeline
// @Description Crea un evento para el perro. Requiere ver el perro y un rol distinto de viewer. Nadie puede escribir un privacy_level que su rol no puede leer.
// @Tags events
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param payload body createEventRequest true "Datos del evento"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/events [post]
func createEventHandler(svc *Service, dogsSvc *dogs.Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		d, err := dogsSvc.GetVisible(r.Context(), viewer, chi.URLParam(r, "dogID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Create(r.Context(), viewer, d, CreateInput{
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			Privacy:     req.PrivacyLevel,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de un perro
// @Description Lista los eventos que el rol puede leer (viewer: public; volunteer/vet: public+private; admin: todos), más recientes primero. Si el perro no es visible => 403.
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param types query string false "Lista CSV de tipos de evento a incluir (ej: medical,vaccination)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Failure 500 {string} string "internal error"
// @Router /dogs/{dogID}/events [get]
func listEventsHandler(svc *Service, dogsSvc *dogs.Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		d, err := dogsSvc.GetVisible(r.Context(), viewer, chi.URLParam(r, "dogID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		filter := ListFilter{}
		// types=medical,vaccination
		if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
			for _, p := range strings.Split(v, ",") {
				t := EventType(strings.TrimSpace(p))
				if t == "" {
					continue
				}
				filter.Types = append(filter.Types, t)
			}
		}

		items, err := svc.ListVisible(r.Context(), viewer, d, filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Ver un evento
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found / event not found"
// @Router /dogs/{dogID}/events/{eventID} [get]
func getEventHandler(svc *Service, dogsSvc *dogs.Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		d, err := dogsSvc.GetVisible(r.Context(), viewer, chi.URLParam(r, "dogID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		e, err := svc.GetVisible(r.Context(), viewer, d, chi.URLParam(r, "eventID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

func resolveViewer(w http.ResponseWriter, r *http.Request, viewers ViewerLookup) (access.Viewer, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Viewer{}, false
	}
	viewer, err := viewers.ViewerOf(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "forbidden", http.StatusForbidden)
		return access.Viewer{}, false
	}
	return viewer, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, dogs.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, access.ErrAccessDenied):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, dogs.ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		DogID:        e.DogID,
		Type:         e.Type,
		Title:        e.Title,
		Description:  e.Description,
		PrivacyLevel: e.Privacy,
		CreatedBy:    e.CreatedBy,
		CreatedAt:    e.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
