package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
)

// NewVehiclesHandler serves the vehicle registry:
//
//	GET  /api/vehicles               list registered vehicles
//	POST /api/vehicles               register a vehicle
//	GET  /api/vehicles/{plate}/form  trip form prefilled from the vehicle
func NewVehiclesHandler(store fleet.Store, manager *fleet.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/vehicles")
		rest = strings.TrimPrefix(rest, "/")

		if rest != "" {
			parts := strings.Split(rest, "/")
			if r.Method != http.MethodGet || len(parts) != 2 || parts[1] != "form" {
				http.NotFound(w, r)
				return
			}
			form, ok, err := manager.PrefillForm(parts[0])
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(form)
			return
		}

		switch r.Method {
		case http.MethodGet:
			vehicles, err := store.Vehicles()
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(vehicles)
		case http.MethodPost:
			var nv model.NewVehicle
			if err := json.NewDecoder(r.Body).Decode(&nv); err != nil {
				http.Error(w, "invalid JSON", http.StatusBadRequest)
				return
			}
			v, err := manager.RegisterVehicle(nv)
			if err != nil {
				status := http.StatusBadRequest
				if errors.Is(err, fleet.ErrDuplicatePlate) {
					status = http.StatusConflict
				}
				http.Error(w, err.Error(), status)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(v)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
