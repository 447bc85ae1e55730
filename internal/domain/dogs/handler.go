package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// ViewerLookup evita importar el paquete users (rompe ciclos).
type ViewerLookup interface {
	ViewerOf(ctx context.Context, userID string) (access.Viewer, error)
}

func RegisterRoutes(r chi.Router, svc *Service, viewers ViewerLookup) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc, viewers))
		dr.Get("/", listDogsHandler(svc, viewers))

		// Perfil del perro (según política de rol)
		dr.Get("/{dogID}", getDogHandler(svc, viewers))
		dr.Patch("/{dogID}", updateDogHandler(svc, viewers))
	})
}

type createDogRequest struct {
	Name       string           `json:"name"`
	Status     access.DogStatus `json:"status" enums:"available,fostered,adopted,injured,missing,hidden,deceased"`
	Gender     Gender           `json:"gender" enums:"male,female,unknown"`
	Sterilized bool             `json:"sterilized"`
	Tags       []string         `json:"tags"`
	Notes      string           `json:"notes"`
}

type updateDogRequest struct {
	Name       *string           `json:"name"`
	Status     *access.DogStatus `json:"status"`
	Gender     *Gender           `json:"gender"`
	Sterilized *bool             `json:"sterilized"`
	Tags       *[]string         `json:"tags"`
	Notes      *string           `json:"notes"`

	RescuerID *string `json:"rescuer_id"`
	FosterID  *string `json:"foster_id"`
	VetID     *string `json:"vet_id"`
	AdopterID *string `json:"adopter_id"`
}

type dogResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Status     access.DogStatus `json:"status"`
	Gender     Gender           `json:"gender"`
	Sterilized bool             `json:"sterilized"`
	LocationID string           `json:"location_id"`
	RescuerID  string           `json:"rescuer_id,omitempty"`
	FosterID   string           `json:"foster_id,omitempty"`
	VetID      string           `json:"vet_id,omitempty"`
	AdopterID  string           `json:"adopter_id,omitempty"`
	Tags       []string         `json:"tags"`
	Notes      string           `json:"notes,omitempty"`
	CreatedBy  string           `json:"created_by"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// createDogHandler godoc
// @Summary Registrar perro
// @Description Registra un perro en la región actual del usuario. Requiere rol admin, volunteer o vet. Si lo crea un volunteer queda como rescuer.
// @Tags dogs
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createDogRequest true "Datos del perro"
// @Success 201 {object} dogResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /dogs [post]
func createDogHandler(svc *Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), viewer, CreateInput{
			Name:       req.Name,
			Status:     req.Status,
			Gender:     req.Gender,
			Sterilized: req.Sterilized,
			Tags:       req.Tags,
			Notes:      req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// listDogsHandler godoc
// @Summary Listar perros de mi región
// @Description Lista los perros de la región actual del usuario que su rol le permite ver (más recientes primero).
// @Tags dogs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param status query string false "Lista CSV de estados (ej: available,injured)"
// @Success 200 {array} dogResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 500 {string} string "internal error"
// @Router /dogs [get]
func listDogsHandler(svc *Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		filter := ListFilter{}
		if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
			for _, p := range strings.Split(v, ",") {
				st := access.DogStatus(strings.TrimSpace(p))
				if st == "" {
					continue
				}
				filter.Statuses = append(filter.Statuses, st)
			}
		}

		items, err := svc.ListVisible(r.Context(), viewer, filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getDogHandler godoc
// @Summary Perfil de un perro
// @Description Devuelve el perro si la política de rol lo permite. 403 si no: el cliente no debe renderizar el registro.
// @Tags dogs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		d, err := svc.GetVisible(r.Context(), viewer, chi.URLParam(r, "dogID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description PATCH parcial. admin siempre; volunteer si es rescuer o foster; vet si es el vet asignado. Las asignaciones (rescuer_id, foster_id, vet_id, adopter_id) solo las cambia un admin; "" quita la asignación.
// @Tags dogs
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param dogID path string true "ID del perro"
// @Param payload body updateDogRequest true "Campos a modificar"
// @Success 200 {object} dogResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [patch]
func updateDogHandler(svc *Service, viewers ViewerLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := resolveViewer(w, r, viewers)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateDogRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), viewer, chi.URLParam(r, "dogID"), UpdateInput{
			Name:       req.Name,
			Status:     req.Status,
			Gender:     req.Gender,
			Sterilized: req.Sterilized,
			Tags:       req.Tags,
			Notes:      req.Notes,
			RescuerID:  req.RescuerID,
			FosterID:   req.FosterID,
			VetID:      req.VetID,
			AdopterID:  req.AdopterID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// resolveViewer exige auth y un perfil existente. Escribe la respuesta de error si falla.
func resolveViewer(w http.ResponseWriter, r *http.Request, viewers ViewerLookup) (access.Viewer, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Viewer{}, false
	}
	viewer, err := viewers.ViewerOf(r.Context(), claims.UserID)
	if err != nil {
		// identidad sin perfil: no hay rol que evaluar
		http.Error(w, "forbidden", http.StatusForbidden)
		return access.Viewer{}, false
	}
	return viewer, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, access.ErrAccessDenied):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toDogResponse(d Dog) dogResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return dogResponse{
		ID:         d.ID,
		Name:       d.Name,
		Status:     d.Status,
		Gender:     d.Gender,
		Sterilized: d.Sterilized,
		LocationID: d.LocationID,
		RescuerID:  d.RescuerID,
		FosterID:   d.FosterID,
		VetID:      d.VetID,
		AdopterID:  d.AdopterID,
		Tags:       tags,
		Notes:      d.Notes,
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (dogs/events)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
