package recalc

import (
	"testing"

	"github.com/ecofleet/carbon-tracker/core/emissions"
	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/infra/logger"
)

func storedInspection(id int64, distance float64) model.Inspection {
	var insp model.Inspection
	insp.ID = id
	insp.Date = "2026-03-01"
	insp.FuelType = "Diesel"
	insp.FuelEconomy = "11.5"
	insp.DistanceKm = distance
	insp.Emissions = emissions.Calculate(insp.TripForm)
	return insp
}

func TestRunNoDrift(t *testing.T) {
	store := fleet.NewMemoryStore(nil)
	if err := store.AddInspection(storedInspection(1, 100)); err != nil {
		t.Fatalf("add: %v", err)
	}
	changed, err := Run(store, logger.NopLogger{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if changed != 0 {
		t.Fatalf("expected no rewrites got %d", changed)
	}
}

func TestRunRewritesDrifted(t *testing.T) {
	store := fleet.NewMemoryStore(nil)
	fresh := storedInspection(1, 100)
	drifted := storedInspection(2, 200)
	drifted.Emissions.Fuel += 5
	drifted.Emissions.Total += 5
	if err := store.AddInspection(fresh); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.AddInspection(drifted); err != nil {
		t.Fatalf("add: %v", err)
	}

	changed, err := Run(store, logger.NopLogger{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 rewrite got %d", changed)
	}

	got, _ := store.Inspections()
	want := emissions.Calculate(drifted.TripForm)
	if got[1].Emissions != want {
		t.Fatalf("drifted record not rewritten: %+v", got[1].Emissions)
	}
	if got[0].Emissions != fresh.Emissions {
		t.Fatalf("clean record touched: %+v", got[0].Emissions)
	}
}

func TestRunEmptyStore(t *testing.T) {
	changed, err := Run(fleet.NewMemoryStore(nil), logger.NopLogger{})
	if err != nil || changed != 0 {
		t.Fatalf("unexpected result: %d %v", changed, err)
	}
}
