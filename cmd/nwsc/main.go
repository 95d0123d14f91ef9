// Command nwsc collects every National Weather Service dataset for one street
// address and writes the normalized results to the configured sinks.
//
// Usage:
//
//	nwsc [-address "1 City Hall Square, Boston, MA 02201"] [-serve]
//
// Without -serve it runs a single collection and exits non-zero when nothing
// was collected or every sink failed. With -serve it collects every
// COLLECT_INTERVAL and exposes health, metrics, and the latest datasets over
// HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/nws-client/internal/adapter/census"
	"github.com/couchcryptid/nws-client/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/nws-client/internal/adapter/kafka"
	"github.com/couchcryptid/nws-client/internal/adapter/nwsapi"
	"github.com/couchcryptid/nws-client/internal/collect"
	"github.com/couchcryptid/nws-client/internal/config"
	"github.com/couchcryptid/nws-client/internal/domain"
	"github.com/couchcryptid/nws-client/internal/nws"
	"github.com/couchcryptid/nws-client/internal/observability"
	"github.com/couchcryptid/nws-client/internal/render"
	"github.com/couchcryptid/nws-client/internal/repository"
	"github.com/couchcryptid/nws-client/internal/scheduler"
)

func main() {
	address := flag.String("address", "", "street address to collect for (overrides NWS_ADDRESS)")
	serve := flag.Bool("serve", false, "collect on a schedule and serve HTTP endpoints")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var fetcher domain.Fetcher = nwsapi.NewClient(cfg.NWSUserAgent, cfg.NWSTimeout, logger)
	if cfg.NWSCacheTTL > 0 {
		fetcher = nwsapi.NewCachedFetcher(fetcher, cfg.NWSCacheTTL, cfg.NWSCacheSize, metrics)
		logger.Info("response cache enabled", "ttl", cfg.NWSCacheTTL, "size", cfg.NWSCacheSize)
	}
	geocoder := census.NewCachedGeocoder(
		census.NewClient(cfg.CensusGeocoderURL, cfg.NWSUserAgent, cfg.NWSTimeout, logger),
		cfg.CensusCacheSize, metrics,
	)
	client := nws.NewClient(fetcher, geocoder, cfg.NWSAPIURL, logger, metrics)

	sinks, closeSinks, err := buildSinks(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open sinks", "error", err)
		os.Exit(1)
	}
	defer closeSinks()

	collector := collect.New(client, sinks, collect.DefaultSamples(), logger, metrics)

	if !*serve {
		run, err := collector.Run(ctx, cfg.Address)
		if err != nil {
			logger.Warn("collection incomplete", "error", err)
		}
		if run.Outcome == "failure" {
			closeSinks()
			os.Exit(1)
		}
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, collector, collector, logger)
	sched := scheduler.New(collector, cfg.Address, cfg.CollectInterval, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	if err := sched.Start(); err != nil {
		logger.Error("scheduler error", "error", err)
		stop()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	sched.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// buildSinks opens one loader per configured sink. The returned close
// function is safe to call more than once.
func buildSinks(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]collect.Sink, func(), error) {
	var (
		sinks   []collect.Sink
		closers []func()
	)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
		closers = nil
	}

	for _, name := range cfg.Sinks {
		switch name {
		case config.SinkFile:
			sinks = append(sinks, collect.Sink{Name: name, Loader: render.NewFileWriter(cfg.OutputDir, logger)})
		case config.SinkConsole:
			sinks = append(sinks, collect.Sink{Name: name, Loader: render.NewConsole(os.Stdout, cfg.PrintDatasets)})
		case config.SinkKafka:
			w := kafkaadapter.NewWriter(cfg, logger)
			closers = append(closers, func() {
				if err := w.Close(); err != nil {
					logger.Error("kafka writer close error", "error", err)
				}
			})
			sinks = append(sinks, collect.Sink{Name: name, Loader: w})
		case config.SinkPostgres:
			store, err := repository.OpenPostgres(ctx, cfg.DatabaseURL)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			closers = append(closers, store.Close)
			sinks = append(sinks, collect.Sink{Name: name, Loader: repository.NewDatasetLoader(store, logger)})
		}
	}
	return sinks, closeAll, nil
}
