package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/monitoring"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/robfig/cron"
)

const expirySweepWorkerName = "ExpirySweepCronWorker"

// sweepTimeout bounds a single scheduled sweep
const sweepTimeout = 5 * time.Minute

// ExpirySweepWorker runs the calibration expiry sweep on a cron schedule
type ExpirySweepWorker struct {
	monitoringService monitoring.MonitoringService
	spec              string
	cron              *cron.Cron
	logger            logger.Logger
	now               func() time.Time

	mu      sync.Mutex
	running bool
}

// NewExpirySweepWorker creates a worker sweeping on spec, e.g. "@daily" or "0 0 6 * * *"
func NewExpirySweepWorker(monitoringService monitoring.MonitoringService, spec string, logger logger.Logger) (*ExpirySweepWorker, error) {
	w := &ExpirySweepWorker{
		monitoringService: monitoringService,
		spec:              spec,
		cron:              cron.New(),
		logger:            logger,
		now:               calibration.Now,
	}

	if err := w.cron.AddFunc(spec, w.RunOnce); err != nil {
		return nil, fmt.Errorf("could not schedule %s with %q: %w", expirySweepWorkerName, spec, err)
	}
	return w, nil
}

// Name returns the worker name used in logs
func (w *ExpirySweepWorker) Name() string {
	return expirySweepWorkerName
}

// Start begins the schedule in its own goroutine
func (w *ExpirySweepWorker) Start() {
	w.logger.Info("Starting worker", "name", expirySweepWorkerName, "spec", w.spec)
	w.cron.Start()
}

// Stop halts the schedule; a sweep in flight finishes on its own
func (w *ExpirySweepWorker) Stop() {
	w.cron.Stop()
	w.logger.Info("Stopped worker", "name", expirySweepWorkerName)
}

// RunOnce performs one sweep unless another one is still running
func (w *ExpirySweepWorker) RunOnce() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		w.logger.Warn("Skipping sweep, previous run still active", "name", expirySweepWorkerName)
		return
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := w.monitoringService.Sweep(ctx, w.now()); err != nil {
		w.logger.Error("Expiry sweep failed", "name", expirySweepWorkerName, "error", err)
	}
}
