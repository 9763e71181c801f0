package sync

import (
	"context"
	"errors"
	"time"

	"place-manager/core/lock"

	"go.uber.org/zap"
)

// Runner executes sync runs.
type Runner interface {
	Run(ctx context.Context, opts RunOptions) (*Report, error)
}

// Scheduler runs a sync immediately and then once per interval.
// Runs never overlap: the next tick waits for the previous run to return.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a scheduler.
func NewScheduler(runner Runner, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{runner: runner, interval: interval, logger: logger}
}

// Start blocks until ctx is cancelled. Failed runs are logged and retried on the next tick.
func (s *Scheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn("Sync scheduler disabled, interval must be positive", zap.Duration("interval", s.interval))
		return
	}
	s.logger.Info("Sync scheduler started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	_, err := s.runner.Run(ctx, RunOptions{})
	switch {
	case err == nil:
	case errors.Is(err, lock.ErrLocked):
		s.logger.Info("Sync skipped, another run holds the lock")
	default:
		s.logger.Error("Scheduled sync failed", zap.Error(err))
	}
}
