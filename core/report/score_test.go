package report

import (
	"testing"

	"github.com/ecofleet/carbon-tracker/core/model"
)

func scoreInsp(pressure string) model.Inspection {
	return model.Inspection{
		TripForm: model.TripForm{
			TireCount: 4,
			Tires: []model.Tire{
				{Pressure: pressure}, {Pressure: pressure},
				{Pressure: pressure}, {Pressure: pressure},
			},
		},
	}
}

func TestFleetScorePerfect(t *testing.T) {
	set := []model.Inspection{scoreInsp("35")}
	if s := FleetScore(set, 0, 100); s != 100 {
		t.Fatalf("expected 100 got %d", s)
	}
}

func TestFleetScoreEmpty(t *testing.T) {
	if s := FleetScore(nil, 0, 0); s != 0 {
		t.Fatalf("expected 0 for empty set got %d", s)
	}
}

func TestFleetScoreZeroDistance(t *testing.T) {
	// No distance means no idle penalty; only pressure compliance counts.
	set := []model.Inspection{scoreInsp("35")}
	if s := FleetScore(set, 500, 0); s != 100 {
		t.Fatalf("expected 100 got %d", s)
	}
}

func TestFleetScoreNonCompliantPressure(t *testing.T) {
	set := []model.Inspection{scoreInsp("20")}
	// 100*0.7 with no compliance credit.
	if s := FleetScore(set, 0, 100); s != 70 {
		t.Fatalf("expected 70 got %d", s)
	}
}

func TestFleetScoreIdlePenalty(t *testing.T) {
	set := []model.Inspection{scoreInsp("35")}
	// 60000 km reads as 1000 distance-minutes. 50 idle minutes stays
	// under the 0.1 ratio threshold, 500 does not.
	low := FleetScore(set, 50, 60000)
	high := FleetScore(set, 500, 60000)
	if low != 100 {
		t.Fatalf("idle under threshold must not be penalized, got %d", low)
	}
	// 100 - 0.4*200 = 20, blended: 20*0.7 + 30.
	if high != 44 {
		t.Fatalf("expected 44 got %d", high)
	}
}

func TestFleetScoreClamped(t *testing.T) {
	bad := []model.Inspection{scoreInsp("5")}
	if s := FleetScore(bad, 100000, 1); s != 0 {
		t.Fatalf("expected clamp to 0 got %d", s)
	}
	good := []model.Inspection{scoreInsp("35")}
	if s := FleetScore(good, 0, 1000000); s != 100 {
		t.Fatalf("expected clamp to 100 got %d", s)
	}
	for _, set := range [][]model.Inspection{bad, good} {
		for _, idle := range []float64{0, 1, 1e6} {
			for _, dist := range []float64{0, 1, 1e6} {
				if s := FleetScore(set, idle, dist); s < 0 || s > 100 {
					t.Fatalf("score out of range: %d (idle=%v dist=%v)", s, idle, dist)
				}
			}
		}
	}
}

func TestFleetScoreComplianceFraction(t *testing.T) {
	set := []model.Inspection{scoreInsp("35"), scoreInsp("20")}
	// 100*0.7 + 0.5*30
	if s := FleetScore(set, 0, 100); s != 85 {
		t.Fatalf("expected 85 got %d", s)
	}
}
