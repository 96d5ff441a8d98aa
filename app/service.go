// Package app wires the stores, the fleet manager, the metrics sinks and
// the transports into a runnable service.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ecofleet/carbon-tracker/api"
	"github.com/ecofleet/carbon-tracker/config"
	"github.com/ecofleet/carbon-tracker/core/catalog"
	"github.com/ecofleet/carbon-tracker/core/fleet"
	coremetrics "github.com/ecofleet/carbon-tracker/core/metrics"
	"github.com/ecofleet/carbon-tracker/core/model"
	"github.com/ecofleet/carbon-tracker/infra/logger"
	"github.com/ecofleet/carbon-tracker/infra/metrics"
	"github.com/ecofleet/carbon-tracker/infra/mqtt"
	"github.com/ecofleet/carbon-tracker/infra/store"
	"github.com/ecofleet/carbon-tracker/internal/eventbus"
)

// Service orchestrates the fleet manager and its transports.
type Service struct {
	Manager *fleet.Manager
	Store   fleet.Store

	bus      *eventbus.TypedBus[model.Inspection]
	sink     coremetrics.TripSink
	ingestor *mqtt.Ingestor
	log      logger.Logger

	httpAddr    string
	promEnabled bool
	promAddr    string
}

// OpenStore opens the fleet store selected by the configuration, seeding
// the destination catalog on first use.
func OpenStore(cfg *config.Config) (fleet.Store, error) {
	if cfg.Store.Backend == "memory" {
		return fleet.NewMemoryStore(catalog.DefaultDestinations), nil
	}
	return store.NewSQLiteStore(cfg.Store.Path, catalog.DefaultDestinations)
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	st, err := OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var sinks []coremetrics.TripSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.TripSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.NewTyped[model.Inspection]()
	manager := fleet.NewManager(st, bus, logger.New("fleet"))

	svc := &Service{
		Manager:     manager,
		Store:       st,
		bus:         bus,
		sink:        sink,
		log:         logg,
		httpAddr:    cfg.HTTP.Addr,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promAddr:    cfg.Metrics.PrometheusAddr,
	}

	if cfg.MQTT.Enabled {
		ing, err := mqtt.NewIngestor(cfg.MQTT, manager)
		if err != nil {
			return nil, fmt.Errorf("mqtt ingestor: %w", err)
		}
		svc.ingestor = ing
	}
	return svc, nil
}

// Mux returns the API routing table.
func (s *Service) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/trips", api.NewTripsHandler(s.Store, s.Manager))
	mux.Handle("/api/report", api.NewReportHandler(s.Store))
	mux.Handle("/api/vehicles", api.NewVehiclesHandler(s.Store, s.Manager))
	mux.Handle("/api/vehicles/", api.NewVehiclesHandler(s.Store, s.Manager))
	mux.Handle("/api/destinations", api.NewDestinationsHandler(s.Store))
	mux.Handle("/api/catalog", api.NewCatalogHandler())
	mux.Handle("/api/route/estimate", api.NewRouteHandler())
	return mux
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.consumeEvents(ctx)

	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if rec, ok := s.sink.(coremetrics.FleetSizeRecorder); ok {
		if vehicles, err := s.Store.Vehicles(); err == nil {
			if err := rec.RecordFleetSize(len(vehicles)); err != nil {
				s.log.Warnf("record fleet size: %v", err)
			}
		}
	}

	srv := &http.Server{Addr: s.httpAddr, Handler: s.Mux()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("API listening on %s", s.httpAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// consumeEvents forwards recorded inspections to the metrics sink.
func (s *Service) consumeEvents(ctx context.Context) {
	events := s.bus.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case insp, ok := <-events:
			if !ok {
				return
			}
			if err := s.sink.RecordTrip(insp); err != nil {
				s.log.Warnf("record trip metrics: %v", err)
			}
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.ingestor != nil {
		s.ingestor.Close()
	}
	s.bus.Close()
	if c, ok := s.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
