// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/metrics"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
)

// Workers schedules a set of [Worker]s on a cron scheduler.
type Workers struct {
	cron    *cron.Cron
	chain   cron.Chain
	workers []Worker
	jobs    []cron.Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// New returns an empty scheduler. Use Add to register jobs.
func New(logger *logger.Logger) *Workers {
	ctx, cancel := context.WithCancel(context.Background())
	cl := cronLogger{logger: logger}
	return &Workers{
		cron:   cron.New(cron.WithLogger(cl)),
		chain:  cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

// NewWorkers registers the exchange rate refresher (when a feed URL is
// configured) and the stale call sweeper.
func NewWorkers(services *service.Services, cfg config.Workers, client *utils.HTTPClient, logger *logger.Logger) (*Workers, error) {
	w := New(logger)

	if cfg.ExchangeRateURL != "" {
		rates := NewExchangeRateWorker(cfg.ExchangeRateURL, client, services.CostService, logger)
		if err := w.Add(cfg.ExchangeRateSchedule, rates); err != nil {
			return nil, err
		}
	} else {
		logger.Info().Msg("exchange rate worker disabled: no feed url configured")
	}

	sweeper := NewStaleCallSweeper(services.CallService, cfg.StaleCallAge, logger)
	if err := w.Add(cfg.StaleCallSchedule, sweeper); err != nil {
		return nil, err
	}

	return w, nil
}

// Add schedules worker under the cron spec. Scheduled ticks and the initial
// run in Start share one wrapped job, so a run never overlaps another.
func (w *Workers) Add(spec string, worker Worker) error {
	job := w.chain.Then(cron.FuncJob(func() { w.runOnce(worker) }))
	if _, err := w.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalidSchedule, worker.Name(), spec, err)
	}
	w.workers = append(w.workers, worker)
	w.jobs = append(w.jobs, job)
	w.logger.Info().Str("worker", worker.Name()).Str("schedule", spec).Msg("worker scheduled")
	return nil
}

// Start runs every worker once in the background and then hands them to the
// scheduler.
func (w *Workers) Start() {
	for _, job := range w.jobs {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			job.Run()
		}()
	}
	w.cron.Start()
}

// Run starts the workers and blocks until ctx is done, then stops them and
// waits for running jobs.
func (w *Workers) Run(ctx context.Context) error {
	w.Start()
	<-ctx.Done()
	return w.Stop(context.Background())
}

// Stop cancels running jobs and waits for them until ctx is done.
func (w *Workers) Stop(ctx context.Context) error {
	w.cancel()
	cronDone := w.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info().Msg("workers stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Workers) runOnce(worker Worker) {
	if w.ctx.Err() != nil {
		return
	}

	start := time.Now()
	err := worker.Run(w.ctx)
	elapsed := time.Since(start)
	metrics.RecordWorkerRun(worker.Name(), elapsed, err)

	if err != nil {
		w.logger.Err(err).Str("func", "*Workers.runOnce").Str("worker", worker.Name()).Msg("worker run failed")
		return
	}
	w.logger.Debug().Str("worker", worker.Name()).Dur("duration", elapsed).Msg("worker run finished")
}

// cronLogger routes the scheduler's own messages to zerolog.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
