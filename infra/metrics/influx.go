package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/ecofleet/carbon-tracker/core/metrics"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/infra/logger"
)

// InfluxSink writes trip records to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.TripSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordTrip writes the trip as a single measurement point.
func (s *InfluxSink) RecordTrip(i model.Inspection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ts, err := time.Parse(time.RFC3339, i.Timestamp)
	if err != nil {
		ts = time.Now().UTC()
	}
	p := write.NewPointWithMeasurement("trip_emissions").
		AddTag("vehicle_plate", i.VehiclePlate).
		AddTag("provider", i.ProviderName).
		AddTag("fuel_type", i.FuelType).
		AddField("fuel_kg", round3(i.Emissions.Fuel)).
		AddField("tires_kg", round3(i.Emissions.Tires)).
		AddField("oil_kg", round3(i.Emissions.Oil)).
		AddField("idle_kg", round3(i.Emissions.Idle)).
		AddField("total_kg", round3(i.Emissions.Total)).
		AddField("distance_km", i.DistanceKm).
		AddField("idle_minutes", i.IdleMinutes()).
		SetTime(ts)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
