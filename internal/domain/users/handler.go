package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"stray-rescue/internal/domain/access"
	"stray-rescue/internal/domain/locations"
	"stray-rescue/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", getMeHandler(svc))
		mr.Patch("/location", switchLocationHandler(svc))
	})

	// Gestión de roles (admin)
	r.Patch("/users/{userID}/role", setRoleHandler(svc))
}

type profileResponse struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	FullName   string      `json:"full_name,omitempty"`
	Role       access.Role `json:"role"`
	LocationID string      `json:"location_id"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type switchLocationRequest struct {
	Zone string `json:"zone"`
}

type setRoleRequest struct {
	Role string `json:"role" enums:"admin,volunteer,vet,viewer"`
}

// getMeHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// switchLocationHandler godoc
// @Summary Cambiar de rescue zone
// @Description Cambia la región actual del usuario. La location se crea si todavía no existe.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body switchLocationRequest true "Código de zona (ej: koh-phangan)"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid zone"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/location [patch]
func switchLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req switchLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.SwitchLocation(r.Context(), claims.UserID, req.Zone)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// setRoleHandler godoc
// @Summary Cambiar el rol de un usuario
// @Description Solo un admin puede cambiar roles. El rol debe ser uno de admin, volunteer, vet, viewer.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param userID path string true "ID del usuario"
// @Param payload body setRoleRequest true "Nuevo rol"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "profile not found"
// @Router /users/{userID}/role [patch]
func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		actor, err := svc.ViewerOf(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req setRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.SetRole(r.Context(), actor, chi.URLParam(r, "userID"), req.Role)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, locations.ErrInvalidZone):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, access.ErrAccessDenied):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, locations.ErrNoLocationAvailable):
		http.Error(w, "no location available", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       p.Role,
		LocationID: p.LocationID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
