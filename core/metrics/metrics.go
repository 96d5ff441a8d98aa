// Package metrics defines the observability contract for recorded trips.
// Sink implementations live in infra/metrics.
package metrics

import "github.com/ecofleet/carbon-tracker/core/model"

// TripSink records trips for observability purposes.
type TripSink interface {
	RecordTrip(model.Inspection) error
}

// FleetSizeRecorder records the number of registered vehicles.
type FleetSizeRecorder interface {
	RecordFleetSize(size int) error
}

// NopSink implements TripSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordTrip(model.Inspection) error { return nil }
func (NopSink) RecordFleetSize(int) error         { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`

	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
