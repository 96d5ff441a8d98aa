package api

import (
	"encoding/json"
	"net/http"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/report"
)

// NewReportHandler serves GET /api/report with optional inclusive start
// and end date query parameters (YYYY-MM-DD). When no inspection matches
// the filter it answers 204; clients render that as a "no data" state.
func NewReportHandler(store fleet.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		inspections, err := store.Inspections()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		filter := report.DateFilter{
			Start: r.URL.Query().Get("start"),
			End:   r.URL.Query().Get("end"),
		}
		rep := report.Build(inspections, filter)
		if rep == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rep)
	})
}
