package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecofleet/carbon-tracker/core/fleet"
)

// NewDestinationsHandler serves GET /api/destinations (list) and
// POST /api/destinations (add one, duplicates ignored).
func NewDestinationsHandler(store fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			dests, err := store.Destinations()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(dests)
		case http.MethodPost:
			var in struct {
				Name string `json:"name"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				http.Error(w, "invalid JSON", http.StatusBadRequest)
				return
			}
			name := strings.TrimSpace(in.Name)
			if name == "" {
				http.Error(w, "name is required", http.StatusBadRequest)
				return
			}
			if err := store.AddDestination(name); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusCreated)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
