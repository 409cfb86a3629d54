package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// RefreshFunc is the idempotent refresh operation the scheduler drives.
// It reports whether new rates were stored.
type RefreshFunc func(ctx context.Context) (bool, error)

// RateRefresher periodically triggers a rate refresh. A failed cycle is
// logged and skipped; previously persisted rates stay authoritative and the
// next tick retries naturally, so there is no retry storm.
type RateRefresher struct {
	interval time.Duration
	refresh  RefreshFunc
	logger   *slog.Logger
}

func NewRateRefresher(interval time.Duration, refresh RefreshFunc, logger *slog.Logger) *RateRefresher {
	return &RateRefresher{
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

// Run refreshes once immediately and then on every tick until the context is
// cancelled. It blocks; callers run it in its own goroutine.
func (r *RateRefresher) Run(ctx context.Context) {
	r.logger.Info("Rate refresher starting", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Rate refresher stopping")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *RateRefresher) tick(ctx context.Context) {
	updated, err := r.refresh(ctx)
	if err != nil {
		r.logger.Error("Rate refresh cycle failed, skipping", slog.String("error", err.Error()))
		return
	}
	if updated {
		r.logger.Info("Rate refresh stored a new snapshot")
	}
}
