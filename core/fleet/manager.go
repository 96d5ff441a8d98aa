package fleet

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecofleet/carbon-tracker/core/emissions"
	"github.com/ecofleet/carbon-tracker/core/logger"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/internal/eventbus"
)

// Manager drives the trip recording flow: it validates the submitted
// form, runs the emissions calculator, appends the inspection and rolls
// the vehicle baseline forward. Recorded inspections are published on the
// event bus for observers (metrics sinks, MQTT result publisher).
type Manager struct {
	store Store
	bus   *eventbus.TypedBus[model.Inspection]
	log   logger.Logger
	now   func() time.Time
}

// NewManager creates a Manager. bus may be nil when no observers are
// wired.
func NewManager(store Store, bus *eventbus.TypedBus[model.Inspection], log logger.Logger) *Manager {
	return &Manager{store: store, bus: bus, log: log, now: time.Now}
}

// RecordTrip turns a submitted trip form into a stored inspection. The
// inspection is immutable once written; the owning vehicle's tires and
// odometer become the new baseline.
func (m *Manager) RecordTrip(f model.TripForm) (model.Inspection, error) {
	if strings.TrimSpace(f.VehiclePlate) == "" || strings.TrimSpace(f.Date) == "" {
		return model.Inspection{}, fmt.Errorf("vehicle plate and date are required")
	}

	now := m.now()
	insp := model.Inspection{
		TripForm:    f,
		ID:          now.UnixMilli(),
		Timestamp:   now.UTC().Format(time.RFC3339),
		OdometerEnd: f.OdometerStart + f.DistanceKm,
		Emissions:   emissions.Calculate(f),
	}

	if err := m.store.AddInspection(insp); err != nil {
		return model.Inspection{}, fmt.Errorf("store inspection: %w", err)
	}
	if err := m.store.UpdateVehicleBaseline(f.VehiclePlate, f.Tires, insp.OdometerEnd); err != nil {
		// The inspection is already committed; a stale baseline only
		// affects the next form prefill.
		m.log.Warnf("update vehicle baseline %s: %v", f.VehiclePlate, err)
	}

	m.log.Infof("trip recorded plate=%s date=%s total_kg=%.3f", f.VehiclePlate, f.Date, insp.Emissions.Total)
	if m.bus != nil {
		m.bus.Publish(insp)
	}
	return insp, nil
}

// RegisterVehicle adds a vehicle to the fleet with a fresh id and a zero
// odometer.
func (m *Manager) RegisterVehicle(nv model.NewVehicle) (model.Vehicle, error) {
	if nv.Plate == "" || nv.ProviderName == "" || nv.Make == "" || nv.Model == "" || nv.Year == "" {
		return model.Vehicle{}, fmt.Errorf("plate, provider, make, model and year are required")
	}
	v := model.Vehicle{
		ID:           m.now().UnixMilli(),
		Plate:        nv.Plate,
		ProviderName: nv.ProviderName,
		Make:         nv.Make,
		Model:        nv.Model,
		Year:         nv.Year,
		FuelType:     nv.FuelType,
		FuelEconomy:  nv.FuelEconomy,
		TireCount:    nv.TireCount,
		Tires:        append([]model.Tire(nil), nv.Tires...),
	}
	if err := m.store.AddVehicle(v); err != nil {
		return model.Vehicle{}, err
	}
	m.log.Infof("vehicle registered plate=%s provider=%s", v.Plate, v.ProviderName)
	return v, nil
}

// PrefillForm returns a trip form prefilled from the vehicle registered
// under the given plate, mirroring what the inspection form does when a
// vehicle is selected.
func (m *Manager) PrefillForm(plate string) (model.TripForm, bool, error) {
	v, ok, err := m.store.VehicleByPlate(plate)
	if err != nil || !ok {
		return model.TripForm{}, false, err
	}
	return model.TripForm{
		VehiclePlate:    v.Plate,
		ProviderName:    v.ProviderName,
		Make:            v.Make,
		Model:           v.Model,
		Year:            v.Year,
		FuelType:        v.FuelType,
		FuelEconomy:     v.FuelEconomy,
		TireCount:       v.TireCount,
		Tires:           append([]model.Tire(nil), v.Tires...),
		OdometerStart:   v.LastOdometer,
		OilCondition:    "clean",
		AirFilter:       "clean",
		IdleTimePerStop: 15,
	}, true, nil
}
