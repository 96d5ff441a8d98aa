package route

import (
	"testing"

	"github.com/ecofleet/carbon-tracker/core/model"
)

func TestEstimate(t *testing.T) {
	stops := []model.Stop{{Location: "Maadi"}, {Location: "Zamalek"}}
	// Two stops plus the warehouse leg.
	if d := Estimate(stops); d != 75 {
		t.Fatalf("expected 75 got %v", d)
	}
}

func TestEstimateSkipsBlankStops(t *testing.T) {
	stops := []model.Stop{{Location: "Maadi"}, {Location: "  "}, {Location: ""}}
	if d := Estimate(stops); d != 50 {
		t.Fatalf("expected 50 got %v", d)
	}
}

func TestEstimateNoStops(t *testing.T) {
	if d := Estimate(nil); d != 0 {
		t.Fatalf("expected 0 got %v", d)
	}
	if d := Estimate([]model.Stop{{Location: ""}}); d != 0 {
		t.Fatalf("expected 0 for blank-only stops got %v", d)
	}
}
