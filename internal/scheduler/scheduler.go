// Package scheduler runs collections on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/nws-client/internal/collect"
	"github.com/go-co-op/gocron"
)

// Runner performs one collection for an address.
type Runner interface {
	Run(ctx context.Context, address string) (collect.Run, error)
}

// Scheduler periodically collects datasets for one address. The first run
// starts as soon as the scheduler does; runs never overlap.
type Scheduler struct {
	scheduler *gocron.Scheduler
	runner    Runner
	address   string
	interval  time.Duration
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a Scheduler. A non-positive interval defaults to 15 minutes.
func New(runner Runner, address string, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		runner:    runner,
		address:   address,
		interval:  interval,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start schedules the collection job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.run)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", "address", s.address, "interval", s.interval.String())
	return nil
}

// Stop cancels any in-flight run and stops future runs.
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
}

func (s *Scheduler) run() {
	// A run may not outlast the interval, otherwise the next one is skipped.
	ctx, cancel := context.WithTimeout(s.ctx, s.interval)
	defer cancel()

	s.logger.Debug("scheduled collection starting", "address", s.address)
	if _, err := s.runner.Run(ctx, s.address); err != nil {
		s.logger.Warn("scheduled collection incomplete", "address", s.address, "error", err)
	}
}
