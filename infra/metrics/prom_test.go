package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/ecofleet/carbon-tracker/core/metrics"
	"github.com/ecofleet/carbon-tracker/core/model"
)

func testInspection() model.Inspection {
	i := model.Inspection{}
	i.ProviderName = "Acme"
	i.FuelType = "Diesel"
	i.DistanceKm = 120
	i.Emissions = model.Emissions{Fuel: 30, Tires: 1, Oil: 0.5, Idle: 2, Total: 33.5}
	return i
}

func TestPromSinkRecordTrip(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordTrip(testInspection()))
	require.NoError(t, sink.RecordTrip(testInspection()))

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.trips.WithLabelValues("Acme", "Diesel")))
	assert.Equal(t, 60.0, testutil.ToFloat64(sink.emissions.WithLabelValues("fuel")))
	assert.Equal(t, 4.0, testutil.ToFloat64(sink.emissions.WithLabelValues("idle")))
	assert.Equal(t, 240.0, testutil.ToFloat64(sink.distance))
}

func TestPromSinkRecordFleetSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordFleetSize(7))
	assert.Equal(t, 7.0, testutil.ToFloat64(sink.fleet))
}

func TestPromSinkReuseRegistry(t *testing.T) {
	// Registering twice on the same registry must reuse the existing
	// collectors instead of failing.
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordTrip(testInspection()))
	require.NoError(t, second.RecordTrip(testInspection()))
	assert.Equal(t, 2.0, testutil.ToFloat64(second.trips.WithLabelValues("Acme", "Diesel")))
}
