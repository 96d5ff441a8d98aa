// Package route estimates trip distances. There is no routing engine
// behind it: the estimate is a fixed per-leg heuristic that only depends
// on how many stops carry a location.
package route

import (
	"strings"

	"github.com/ecofleet/carbon-tracker/core/model"
)

// kmPerLeg is the assumed distance for each leg of the trip, including the
// leg from the warehouse origin to the first stop.
const kmPerLeg = 25

// Estimate returns the synthetic route distance in km for the given stops.
// Stops with a blank location are ignored; with no usable stop the
// estimate is 0.
func Estimate(stops []model.Stop) float64 {
	valid := 0
	for _, s := range stops {
		if strings.TrimSpace(s.Location) != "" {
			valid++
		}
	}
	if valid == 0 {
		return 0
	}
	return float64(valid+1) * kmPerLeg
}
