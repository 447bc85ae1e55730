package provisioning

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stray-rescue/internal/domain/access"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, seq *Sequencer) {
	r.Post("/auth/signup", signupHandler(seq))
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Zone     string `json:"zone" example:"koh-phangan"`
}

type signupLocation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type signupResponse struct {
	UserID         string         `json:"user_id"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name,omitempty"`
	Role           access.Role    `json:"role"`
	Location       signupLocation `json:"location"`
	ProfileCreated bool           `json:"profile_created"`
	CreatedAt      time.Time      `json:"created_at"`
}

// signupHandler godoc
// @Summary Registro de usuario
// @Description Crea (o reutiliza) la location de la zona, la identidad en el proveedor de auth y el perfil con rol viewer.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "Datos de registro"
// @Success 201 {object} signupResponse
// @Failure 400 {string} string "invalid zone"
// @Failure 422 {string} string "mensaje del proveedor de auth"
// @Failure 500 {string} string "profile creation failed"
// @Failure 503 {string} string "no location available"
// @Router /auth/signup [post]
func signupHandler(seq *Sequencer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := seq.Signup(r.Context(), SignupInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Zone:     req.Zone,
		})
		if err != nil {
			writeSignupError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, signupResponse{
			UserID:   res.Identity.ID,
			Email:    res.Profile.Email,
			FullName: res.Profile.FullName,
			Role:     res.Profile.Role,
			Location: signupLocation{
				ID:      res.Location.ID,
				Name:    res.Location.Name,
				Country: res.Location.Country,
			},
			ProfileCreated: res.ProfileCreated,
			CreatedAt:      res.Identity.CreatedAt,
		})
	}
}

func writeSignupError(w http.ResponseWriter, err error) {
	var idErr *IdentityCreationError
	var profErr *ProfileCreationError

	switch {
	case errors.Is(err, ErrInvalidZone):
		http.Error(w, "invalid zone", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "email and password are required", http.StatusBadRequest)
	case errors.As(err, &idErr):
		// mensaje del proveedor sin cambios
		http.Error(w, idErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrNoLocationAvailable):
		http.Error(w, "no location available", http.StatusServiceUnavailable)
	case errors.As(err, &profErr):
		http.Error(w, "profile creation failed", http.StatusInternalServerError)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
