// Package recalc recomputes the stored emissions breakdowns with the
// current calculator. It exists for the rare case where the heuristic
// constants change after inspections have been recorded.
package recalc

import (
	"math"

	"github.com/ecofleet/carbon-tracker/core/emissions"
	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/logger"
	"github.com/ecofleet/carbon-tracker/core/model"
)

// RewriteStore is a fleet store that can rewrite stored inspections in
// place. The SQLite and memory stores both implement it.
type RewriteStore interface {
	fleet.Store
	ReplaceInspection(model.Inspection) error
}

// Run recomputes every stored inspection and rewrites those whose
// breakdown drifted from the current calculator output. It returns the
// number of rewritten records.
func Run(store RewriteStore, log logger.Logger) (int, error) {
	inspections, err := store.Inspections()
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, insp := range inspections {
		fresh := emissions.Calculate(insp.TripForm)
		if equal(fresh, insp.Emissions) {
			continue
		}
		log.Debugw("emissions drift", map[string]any{
			"inspection_id": insp.ID,
			"stored_kg":     insp.Emissions.Total,
			"fresh_kg":      fresh.Total,
		})
		insp.Emissions = fresh
		if err := store.ReplaceInspection(insp); err != nil {
			return changed, err
		}
		changed++
	}
	log.Infof("recalculation done: %d of %d inspections rewritten", changed, len(inspections))
	return changed, nil
}

func equal(a, b model.Emissions) bool {
	const eps = 1e-9
	return math.Abs(a.Fuel-b.Fuel) < eps &&
		math.Abs(a.Tires-b.Tires) < eps &&
		math.Abs(a.Oil-b.Oil) < eps &&
		math.Abs(a.Idle-b.Idle) < eps &&
		math.Abs(a.Total-b.Total) < eps
}
