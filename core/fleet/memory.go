package fleet

import (
	"sync"

	"github.com/ecofleet/carbon-tracker/core/model"
)

// MemoryStore keeps the collections in memory, preserving insertion
// order. It backs tests and single-run CLI usage.
type MemoryStore struct {
	mu           sync.Mutex
	vehicles     []model.Vehicle
	inspections  []model.Inspection
	destinations []string
}

// NewMemoryStore returns an empty MemoryStore seeded with the given
// destinations.
func NewMemoryStore(destinations []string) *MemoryStore {
	s := &MemoryStore{}
	s.destinations = append(s.destinations, destinations...)
	return s
}

func (s *MemoryStore) AddVehicle(v model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.vehicles {
		if existing.Plate == v.Plate {
			return ErrDuplicatePlate
		}
	}
	s.vehicles = append(s.vehicles, v)
	return nil
}

func (s *MemoryStore) Vehicles() ([]model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *MemoryStore) VehicleByPlate(plate string) (model.Vehicle, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.Plate == plate {
			return v, true, nil
		}
	}
	return model.Vehicle{}, false, nil
}

func (s *MemoryStore) UpdateVehicleBaseline(plate string, tires []model.Tire, odometer float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.vehicles {
		if s.vehicles[i].Plate == plate {
			s.vehicles[i].Tires = append([]model.Tire(nil), tires...)
			s.vehicles[i].LastOdometer = odometer
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) AddInspection(i model.Inspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inspections = append(s.inspections, i)
	return nil
}

func (s *MemoryStore) Inspections() ([]model.Inspection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Inspection, len(s.inspections))
	copy(out, s.inspections)
	return out, nil
}

// ReplaceInspection rewrites a stored inspection, keyed by id. Unknown
// ids are a no-op.
func (s *MemoryStore) ReplaceInspection(i model.Inspection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx := range s.inspections {
		if s.inspections[idx].ID == i.ID {
			s.inspections[idx] = i
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Destinations() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.destinations))
	copy(out, s.destinations)
	return out, nil
}

func (s *MemoryStore) AddDestination(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.destinations {
		if d == name {
			return nil
		}
	}
	s.destinations = append(s.destinations, name)
	return nil
}
