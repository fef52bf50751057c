package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StatusRefresher abstracts the activity store's periodic re-evaluation.
type StatusRefresher interface {
	Refresh(ctx context.Context)
}

// RefresherConfig controls the tick period.
type RefresherConfig struct {
	Interval time.Duration
}

// Refresher re-evaluates overdue state on a fixed schedule so activities
// whose due instant passes while the process is running are promoted
// without waiting for the next load.
type Refresher struct {
	store  StatusRefresher
	logger *zap.Logger
	cron   *cron.Cron
	cfg    RefresherConfig
}

func NewRefresher(store StatusRefresher, logger *zap.Logger, cfg RefresherConfig) *Refresher {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Refresher{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		r.store.Refresh(ctx)
		r.logger.Debug("activity status refreshed")
	})

	return r
}

// Start launches the cron scheduler.
func (r *Refresher) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("status refresher started", zap.Duration("interval", r.cfg.Interval))
}

// Stop gracefully stops the scheduler, waiting for an in-flight tick.
func (r *Refresher) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("status refresher stopped")
}
