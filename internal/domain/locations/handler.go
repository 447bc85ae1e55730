package locations

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Públicos: la pantalla de signup necesita las zonas antes de tener sesión.
	r.Get("/zones", listZonesHandler())
	r.Get("/locations", listLocationsHandler(svc))
	r.Get("/locations/{locationID}", getLocationHandler(svc))
}

type zoneResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type locationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// listZonesHandler godoc
// @Summary Listar rescue zones
// @Description Devuelve el mapeo fijo de códigos de zona a (nombre, país).
// @Tags locations
// @Produce json
// @Success 200 {array} zoneResponse
// @Router /zones [get]
func listZonesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := Zones()
		out := make([]zoneResponse, 0, len(items))
		for _, z := range items {
			out = append(out, zoneResponse{Code: z.Code, Name: z.Name, Country: z.Country})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listLocationsHandler godoc
// @Summary Listar locations
// @Description Devuelve las locations ya creadas (se crean de forma lazy en signup o al cambiar de zona).
// @Tags locations
// @Produce json
// @Success 200 {array} locationResponse
// @Failure 500 {string} string "internal error"
// @Router /locations [get]
func listLocationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]locationResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLocationResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getLocationHandler godoc
// @Summary Obtener location
// @Description Devuelve una location por id (p.ej. la location_id de un perfil).
// @Tags locations
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} locationResponse
// @Failure 404 {string} string "location not found"
// @Failure 500 {string} string "internal error"
// @Router /locations/{locationID} [get]
func getLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.GetByID(r.Context(), chi.URLParam(r, "locationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "location not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toLocationResponse(l))
	}
}

func toLocationResponse(l Location) locationResponse {
	return locationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Country:   l.Country,
		CreatedAt: l.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
