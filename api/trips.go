// Package api exposes the fleet tracker over HTTP. Handlers are plain
// net/http handlers returning JSON; routing is composed in app.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
)

// NewTripsHandler serves POST /api/trips (record a trip) and
// GET /api/trips (list recorded inspections).
func NewTripsHandler(store fleet.Store, manager *fleet.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var form model.TripForm
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				http.Error(w, "invalid JSON", http.StatusBadRequest)
				return
			}
			insp, err := manager.RecordTrip(form)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(insp)
		case http.MethodGet:
			inspections, err := store.Inspections()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(inspections)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
