package api

import (
	"encoding/json"
	"net/http"

	"github.com/ecofleet/carbon-tracker/core/catalog"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/core/route"
)

// NewCatalogHandler serves GET /api/catalog: the known makes, models and
// nominal fuel consumption used to prefill the forms.
func NewCatalogHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(catalog.Database())
	})
}

// NewRouteHandler serves POST /api/route/estimate: given the trip stops
// it returns the synthetic distance estimate.
func NewRouteHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var in struct {
			Stops []model.Stop `json:"stops"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		out := struct {
			DistanceKm float64 `json:"distance_km"`
		}{DistanceKm: route.Estimate(in.Stops)}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
}
