package report

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ecofleet/carbon-tracker/core/model"
)

const (
	// Idle minutes per distance-minute (at a 60 km/h reference speed)
	// tolerated before the score is penalized. The distance term stands in
	// for driving time here, a quirk carried over from the original
	// heuristic.
	idleRatioThreshold = 0.1
	idleRatioPenalty   = 200

	// A trip counts as pressure compliant when its average tire pressure
	// is within this many psi of the reference.
	pressureTolerancePSI = 3
)

// FleetScore blends the fleet idle ratio and tire pressure compliance into
// a 0-100 efficiency score. idleMinutes and distanceKm are the totals for
// the same inspection set. An empty set scores 0 and a zero total distance
// skips the idle penalty; both cases were non-finite in the original
// heuristic and are pinned down here.
func FleetScore(inspections []model.Inspection, idleMinutes, distanceKm float64) int {
	if len(inspections) == 0 {
		return 0
	}

	score := 100.0
	if distanceKm > 0 {
		avgIdleRatio := idleMinutes / (distanceKm / 60)
		if avgIdleRatio > idleRatioThreshold {
			score -= (avgIdleRatio - idleRatioThreshold) * idleRatioPenalty
		}
	}

	compliant := make([]float64, len(inspections))
	for i, insp := range inspections {
		if math.Abs(model.ReferencePressurePSI-insp.AverageTirePressure()) < pressureTolerancePSI {
			compliant[i] = 1
		}
	}
	score = score*0.7 + stat.Mean(compliant, nil)*30

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
