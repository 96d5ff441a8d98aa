package metrics

import (
	coremetrics "github.com/ecofleet/carbon-tracker/core/metrics"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records trip events in Prometheus metrics.
type PromSink struct {
	trips     *prometheus.CounterVec
	emissions *prometheus.CounterVec
	distance  prometheus.Counter
	fleet     prometheus.Gauge
}

// NewPromSink registers trip metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (*PromSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	trips := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_trips_total",
		Help: "Total number of recorded trips",
	}, []string{"provider", "fuel_type"})
	emissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fleet_emissions_kg_total",
		Help: "Estimated CO2e emitted by recorded trips in kilograms",
	}, []string{"source"})
	distance := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fleet_distance_km_total",
		Help: "Total estimated trip distance in kilometers",
	})
	fleet := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_vehicles_total",
		Help: "Number of registered vehicles",
	})

	if err := reg.Register(trips); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			trips = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(emissions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			emissions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(distance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			distance = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleet); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleet = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{trips: trips, emissions: emissions, distance: distance, fleet: fleet}, nil
}

// RecordTrip increments the trip counters for one recorded inspection.
func (s *PromSink) RecordTrip(i model.Inspection) error {
	s.trips.WithLabelValues(i.ProviderName, i.FuelType).Inc()
	s.emissions.WithLabelValues("fuel").Add(i.Emissions.Fuel)
	s.emissions.WithLabelValues("tires").Add(i.Emissions.Tires)
	s.emissions.WithLabelValues("oil").Add(i.Emissions.Oil)
	s.emissions.WithLabelValues("idle").Add(i.Emissions.Idle)
	s.distance.Add(i.DistanceKm)
	return nil
}

// RecordFleetSize sets the gauge to the number of registered vehicles.
func (s *PromSink) RecordFleetSize(size int) error {
	if s.fleet != nil {
		s.fleet.Set(float64(size))
	}
	return nil
}
