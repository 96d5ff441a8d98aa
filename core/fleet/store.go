// Package fleet owns the vehicle and inspection collections and the trip
// recording flow that ties the stores to the emissions calculator.
package fleet

import (
	"errors"

	"github.com/ecofleet/carbon-tracker/core/model"
)

// ErrDuplicatePlate is returned when registering a vehicle whose plate is
// already taken.
var ErrDuplicatePlate = errors.New("plate already registered")

// Store persists vehicles, inspections and the destination catalog.
// Inspections are append-only; vehicles are mutated only through
// UpdateVehicleBaseline after a trip is recorded.
type Store interface {
	AddVehicle(model.Vehicle) error
	Vehicles() ([]model.Vehicle, error)
	VehicleByPlate(plate string) (model.Vehicle, bool, error)
	UpdateVehicleBaseline(plate string, tires []model.Tire, odometer float64) error

	AddInspection(model.Inspection) error
	Inspections() ([]model.Inspection, error)

	Destinations() ([]string, error)
	AddDestination(name string) error
}
