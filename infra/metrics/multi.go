package metrics

import (
	coremetrics "github.com/ecofleet/carbon-tracker/core/metrics"
	"github.com/ecofleet/carbon-tracker/core/model"
)

// MultiSink fans trip records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.TripSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.TripSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTrip forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordTrip(i model.Inspection) error {
	for _, s := range m.Sinks {
		if err := s.RecordTrip(i); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetSize forwards the fleet size to sinks that record it.
func (m *MultiSink) RecordFleetSize(size int) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FleetSizeRecorder); ok {
			if err := rec.RecordFleetSize(size); err != nil {
				return err
			}
		}
	}
	return nil
}
