// Package collect runs the whole endpoint catalogue for one address and hands
// the resulting datasets to sinks.
package collect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/nws"
	"github.com/couchcryptid/nws-client/internal/observability"
)

var (
	errNoLocation = errors.New("location_data unavailable")
	errNoStation  = errors.New("no station near location")
)

// Loader writes a batch of datasets to a destination.
type Loader interface {
	LoadDatasets(ctx context.Context, datasets []domain.Dataset) error
}

// Sink is a named Loader. The name labels errors and metrics.
type Sink struct {
	Name   string
	Loader Loader
}

// Run summarizes one collection.
type Run struct {
	Address     string    `json:"address"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Datasets    int       `json:"datasets"`
	Records     int       `json:"records"`
	FailedSteps []string  `json:"failed_steps"`
	FailedSinks []string  `json:"failed_sinks"`
	Outcome     string    `json:"outcome"`
}

// Collector orchestrates collect-and-load runs.
type Collector struct {
	client  *nws.Client
	sinks   []Sink
	samples Samples
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool

	mu       sync.RWMutex
	lastRun  *Run
	datasets []domain.Dataset
}

// New creates a Collector.
func New(client *nws.Client, sinks []Sink, samples Samples, logger *slog.Logger, metrics *observability.Metrics) *Collector {
	return &Collector{
		client:  client,
		sinks:   sinks,
		samples: samples,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once a run has loaded at least one dataset.
func (c *Collector) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return errors.New("collector has not completed a run yet")
	}
	return nil
}

// LastRun returns the summary of the most recent run.
func (c *Collector) LastRun() (Run, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastRun == nil {
		return Run{}, false
	}
	return *c.lastRun, true
}

// Datasets returns the datasets of the most recent run.
func (c *Collector) Datasets() []domain.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Dataset(nil), c.datasets...)
}

// Run collects every dataset for address and loads them into each sink.
// Failed steps and sinks are skipped; their errors are joined into the
// returned error alongside a complete Run summary.
func (c *Collector) Run(ctx context.Context, address string) (Run, error) {
	c.metrics.CollectRunning.Set(1)
	defer c.metrics.CollectRunning.Set(0)

	run := Run{Address: address, StartedAt: domain.Now(), FailedSteps: []string{}, FailedSinks: []string{}}
	start := time.Now()

	datasets, collectErr := c.Collect(ctx, address)
	var errs []error
	if collectErr != nil {
		errs = append(errs, collectErr)
		var se *StepError
		for _, err := range unwrapJoined(collectErr) {
			if errors.As(err, &se) {
				run.FailedSteps = append(run.FailedSteps, se.Step)
			}
		}
	}

	if len(datasets) > 0 {
		for _, sink := range c.sinks {
			if err := sink.Loader.LoadDatasets(ctx, datasets); err != nil {
				c.logger.Error("sink failed", "sink", sink.Name, "error", err)
				c.metrics.SinkErrors.WithLabelValues(sink.Name).Inc()
				run.FailedSinks = append(run.FailedSinks, sink.Name)
				errs = append(errs, fmt.Errorf("sink %s: %w", sink.Name, err))
			}
		}
	}

	run.FinishedAt = domain.Now()
	run.Datasets = len(datasets)
	for _, ds := range datasets {
		run.Records += len(ds.Records)
	}
	run.Outcome = outcome(run, len(c.sinks))
	c.metrics.CollectRuns.WithLabelValues(run.Outcome).Inc()
	c.metrics.CollectDuration.Observe(time.Since(start).Seconds())

	if run.Outcome != "failure" {
		c.ready.Store(true)
	}
	c.mu.Lock()
	c.lastRun = &run
	if len(datasets) > 0 {
		c.datasets = datasets
	}
	c.mu.Unlock()

	c.logger.Info("collection finished",
		"address", address,
		"outcome", run.Outcome,
		"datasets", run.Datasets,
		"records", run.Records,
		"failed_steps", len(run.FailedSteps),
		"failed_sinks", len(run.FailedSinks),
	)
	return run, errors.Join(errs...)
}

func outcome(run Run, sinks int) string {
	switch {
	case run.Datasets == 0 || (sinks > 0 && len(run.FailedSinks) == sinks):
		return "failure"
	case len(run.FailedSteps) > 0 || len(run.FailedSinks) > 0:
		return "partial"
	default:
		return "success"
	}
}

// StepError identifies the collection step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return e.Step + ": " + e.Err.Error() }

func (e *StepError) Unwrap() error { return e.Err }

func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// Collect runs every step in catalogue order and returns the datasets that
// succeeded, sorted by name. Steps that depend on the location or its
// nearest station fail when those are unavailable.
func (c *Collector) Collect(ctx context.Context, address string) ([]domain.Dataset, error) {
	var (
		datasets []domain.Dataset
		errs     []error
	)
	for _, s := range c.steps(address) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		ds, err := s.run(ctx)
		if err != nil {
			c.logger.Warn("collection step failed, skipping", "dataset", s.name, "error", err)
			errs = append(errs, &StepError{Step: s.name, Err: err})
			continue
		}
		ds.Name = s.name
		c.metrics.RecordsNormalized.WithLabelValues(s.name).Add(float64(len(ds.Records)))
		datasets = append(datasets, ds)
	}
	sort.Slice(datasets, func(i, j int) bool { return datasets[i].Name < datasets[j].Name })
	return datasets, errors.Join(errs...)
}

type step struct {
	name string
	run  func(ctx context.Context) (domain.Dataset, error)
}

func list[T any](name string, fetch func(ctx context.Context) ([]T, error)) step {
	return step{name: name, run: func(ctx context.Context) (domain.Dataset, error) {
		records, err := fetch(ctx)
		if err != nil {
			return domain.Dataset{}, err
		}
		return domain.ListDataset(name, records), nil
	}}
}

func single[T any](name string, fetch func(ctx context.Context) (T, error)) step {
	return step{name: name, run: func(ctx context.Context) (domain.Dataset, error) {
		record, err := fetch(ctx)
		if err != nil {
			return domain.Dataset{}, err
		}
		return domain.SingleDataset(name, record), nil
	}}
}

// enumeration records nil when the request yields no values.
func enumeration(name string, fetch func(ctx context.Context) ([]string, bool, error)) step {
	return step{name: name, run: func(ctx context.Context) (domain.Dataset, error) {
		values, ok, err := fetch(ctx)
		if err != nil {
			return domain.Dataset{}, err
		}
		if !ok {
			return domain.SingleDataset(name, nil), nil
		}
		return domain.SingleDataset(name, values), nil
	}}
}

func (c *Collector) steps(address string) []step {
	api, s := c.client, c.samples
	var (
		loc      *domain.Location
		stations []domain.Station
		nearest  string
	)
	needLocation := func() (domain.Location, error) {
		if loc == nil {
			return domain.Location{}, errNoLocation
		}
		return *loc, nil
	}
	needStation := func() (string, error) {
		if nearest == "" {
			return "", errNoStation
		}
		return nearest, nil
	}

	return []step{
		single("location_data", func(ctx context.Context) (domain.Location, error) {
			l, err := api.GetLocation(ctx, address)
			if err == nil {
				loc = &l
			}
			return l, err
		}),
		list("local_stations_data", func(ctx context.Context) ([]domain.Station, error) {
			l, err := needLocation()
			if err != nil {
				return nil, err
			}
			stations, err = api.GetStationsNearLocation(ctx, l)
			return stations, err
		}),
		single("nearest_station", func(context.Context) (string, error) {
			if len(stations) == 0 || stations[0].StationID == nil {
				return "", errNoStation
			}
			nearest = *stations[0].StationID
			return nearest, nil
		}),
		single("observations_latest", func(ctx context.Context) (domain.Observation, error) {
			id, err := needStation()
			if err != nil {
				return domain.Observation{}, err
			}
			return api.GetLatestObservation(ctx, id)
		}),
		list("observations_all", func(ctx context.Context) ([]domain.Observation, error) {
			id, err := needStation()
			if err != nil {
				return nil, err
			}
			return api.GetObservations(ctx, id)
		}),
		single("observations_at_time", func(ctx context.Context) (domain.Observation, error) {
			return api.GetObservationAt(ctx, s.ObservationStation, s.ObservationTime)
		}),
		single("forecast_extended", func(ctx context.Context) (domain.Forecast, error) {
			l, err := needLocation()
			if err != nil {
				return domain.Forecast{}, err
			}
			return api.GetExtendedForecast(ctx, l)
		}),
		single("forecast_hourly", func(ctx context.Context) (domain.Forecast, error) {
			l, err := needLocation()
			if err != nil {
				return domain.Forecast{}, err
			}
			return api.GetHourlyForecast(ctx, l)
		}),

		list("radar_servers", api.GetRadarServers),
		single("radar_server", func(ctx context.Context) (domain.RadarServer, error) {
			return api.GetRadarServer(ctx, s.RadarServer)
		}),
		list("radar_stations", api.GetRadarStations),
		single("radar_station", func(ctx context.Context) (domain.RadarStation, error) {
			return api.GetRadarStation(ctx, s.RadarStation)
		}),
		list("radar_station_alarms", func(ctx context.Context) ([]domain.RadarAlarm, error) {
			return api.GetRadarStationAlarms(ctx, s.RadarAlarmStation)
		}),
		list("radar_queue", func(ctx context.Context) ([]domain.RadarQueueItem, error) {
			return api.GetRadarQueue(ctx, s.RadarQueueHost, s.RadarQueueStation)
		}),

		list("alerts", func(ctx context.Context) ([]domain.Alert, error) {
			return api.GetAlertsByArea(ctx, s.AlertArea)
		}),
		single("alert_counts", api.GetAlertCounts),

		list("product_types", api.GetProductTypes),
		list("product_types_by_location", func(ctx context.Context) ([]domain.ProductType, error) {
			return api.GetProductTypesByLocation(ctx, s.ProductLocation)
		}),
		list("product_locations", api.GetProductLocations),
		list("product_locations_by_type", func(ctx context.Context) ([]domain.ProductLocation, error) {
			return api.GetProductLocationsByType(ctx, s.LocationsProductType)
		}),
		list("products", api.GetProducts),
		list("products_by_type", func(ctx context.Context) ([]domain.Product, error) {
			return api.GetProductsByType(ctx, s.ProductType)
		}),
		list("products_by_type_and_location", func(ctx context.Context) ([]domain.Product, error) {
			return api.GetProductsByTypeAndLocation(ctx, s.FilterProductType, s.FilterLocation)
		}),
		single("product", func(ctx context.Context) (domain.Product, error) {
			return api.GetProduct(ctx, s.ProductID)
		}),

		single("zone", func(ctx context.Context) (domain.Zone, error) {
			return api.GetZone(ctx, s.ZoneType, s.ZoneID)
		}),
		list("zones", func(ctx context.Context) ([]domain.Zone, error) {
			return api.GetZones(ctx, s.ZoneListType)
		}),
		list("zone_stations", func(ctx context.Context) ([]domain.Station, error) {
			return api.GetZoneStations(ctx, s.ForecastZone)
		}),
		list("zone_observations", func(ctx context.Context) ([]domain.Observation, error) {
			return api.GetZoneObservations(ctx, s.ObservationZone)
		}),
		single("zone_forecast", func(ctx context.Context) (domain.ZoneForecast, error) {
			return api.GetZoneForecast(ctx, s.ForecastZone)
		}),

		enumeration("valid_zones", api.GetValidZones),
		enumeration("valid_forecast_offices", api.GetValidForecastOffices),

		single("office", func(ctx context.Context) (domain.Office, error) {
			return api.GetOffice(ctx, s.Office)
		}),
		list("office_headlines", func(ctx context.Context) ([]domain.OfficeHeadline, error) {
			return api.GetOfficeHeadlines(ctx, s.Office)
		}),
		single("office_headline", func(ctx context.Context) (domain.OfficeHeadline, error) {
			return api.GetOfficeHeadline(ctx, s.Office, s.OfficeHeadline)
		}),

		list("sigmets", api.GetSigmets),
		list("atsu_sigmets", func(ctx context.Context) ([]domain.Sigmet, error) {
			return api.GetATSUSigmets(ctx, s.ATSU)
		}),
		list("atsu_date_sigmets", func(ctx context.Context) ([]domain.Sigmet, error) {
			return api.GetATSUSigmetsByDate(ctx, s.ATSU, s.SigmetDate)
		}),
		single("sigmet", func(ctx context.Context) (domain.Sigmet, error) {
			return api.GetSigmet(ctx, s.ATSU, s.SigmetDate, s.SigmetTime)
		}),
		single("cwsu", func(ctx context.Context) (domain.CWSU, error) {
			return api.GetCWSU(ctx, s.CWSU)
		}),
		list("cwas", func(ctx context.Context) ([]domain.CWA, error) {
			return api.GetCWAs(ctx, s.CWSU)
		}),
		single("cwa", func(ctx context.Context) (domain.CWA, error) {
			return api.GetCWA(ctx, s.CWSU, s.CWADate, s.CWASequence)
		}),

		list("glossary", api.GetGlossary),
	}
}
