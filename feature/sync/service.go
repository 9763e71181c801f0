package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"place-manager/core/lock"
	"place-manager/core/metrics"
	"place-manager/core/reconcile"
	"place-manager/feature/overpass"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher returns raw snapshots.
type Fetcher interface {
	Fetch(ctx context.Context, cache overpass.Cache) ([]byte, error)
}

// Store is the persisted place set as seen by a sync run.
type Store interface {
	reconcile.Gateway
	ListCached(ctx context.Context) ([]reconcile.Cached, error)
}

// RunOptions controls a single run.
type RunOptions struct {
	// DryRun computes the plan without writing it.
	DryRun bool
}

// Report describes a finished run.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Kinds     map[overpass.Kind]int
	Plan      *reconcile.Plan
	Executed  int
	DryRun    bool
	Duration  time.Duration
}

// Service runs fetch, normalize, reconcile and apply as one unit.
type Service struct {
	fetcher Fetcher
	cache   overpass.Cache
	store   Store
	locker  lock.Locker
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a sync service. A nil locker means no cross-process locking.
func NewService(fetcher Fetcher, cache overpass.Cache, store Store, locker lock.Locker, cfg Config, logger *zap.Logger) *Service {
	if locker == nil {
		locker = lock.NoopLocker{}
	}
	return &Service{
		fetcher: fetcher,
		cache:   cache,
		store:   store,
		locker:  locker,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Run performs one sync. Any stage failure aborts the run before anything is
// written, or rolls the apply transaction back. The stage name prefixes the error.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	report := &Report{RunID: uuid.New(), StartedAt: s.now().UTC(), DryRun: opts.DryRun}
	l := s.logger.With(zap.String("run_id", report.RunID.String()))
	start := time.Now()

	fail := func(stage string, err error) (*Report, error) {
		status := metrics.StatusFailed
		if errors.Is(err, lock.ErrLocked) {
			status = metrics.StatusSkipped
		}
		metrics.SyncRunsTotal.WithLabelValues(status).Inc()
		metrics.SyncDurationSeconds.Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%s: %w", stage, err)
	}

	unlock, err := s.locker.Lock(ctx, s.cfg.LockKey, s.cfg.LockTTL())
	if err != nil {
		return fail("lock", err)
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			l.Warn("Failed to release sync lock", zap.Error(err))
		}
	}()

	l.Info("Sync started", zap.Bool("dry_run", opts.DryRun), zap.String("cache", s.cache.Location()))

	raw, err := s.fetcher.Fetch(ctx, s.cache)
	if err != nil {
		return fail("fetch", err)
	}

	result, err := overpass.Normalize(raw)
	if err != nil {
		return fail("normalize", err)
	}
	report.Kinds = result.Kinds
	l.Info("Normalized snapshot",
		zap.Int("elements", len(result.Elements)),
		zap.Int("nodes", result.Kinds[overpass.KindNode]),
		zap.Int("ways", result.Kinds[overpass.KindWay]),
		zap.Int("relations", result.Kinds[overpass.KindRelation]),
	)

	cached, err := s.store.ListCached(ctx)
	if err != nil {
		return fail("list", err)
	}

	reconcileOpts := reconcile.ReconcileOptions{DryRun: opts.DryRun, ReviveDeleted: s.cfg.ReviveDeleted}
	plan, err := reconcile.Reconcile(result.Elements, cached, report.StartedAt, reconcileOpts)
	if err != nil {
		return fail("reconcile", err)
	}
	report.Plan = plan

	executed, err := reconcile.ApplyPlan(ctx, s.store, plan, reconcileOpts)
	if err != nil {
		return fail("apply", err)
	}
	report.Executed = executed
	report.Duration = time.Since(start)

	status := metrics.StatusSuccess
	if opts.DryRun {
		status = metrics.StatusDryRun
	} else {
		for _, a := range plan.Actions {
			metrics.SyncActionsTotal.WithLabelValues(string(a.Type)).Inc()
		}
	}
	metrics.SyncRunsTotal.WithLabelValues(status).Inc()
	metrics.SyncDurationSeconds.Observe(report.Duration.Seconds())

	l.Info("Sync finished",
		zap.Int("inserts", plan.Summary.Inserts),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("soft_deletes", plan.Summary.SoftDeletes),
		zap.Int("revivals", plan.Summary.Revivals),
		zap.Int("unchanged", plan.Summary.Unchanged),
		zap.Int("executed", executed),
		zap.Duration("took", report.Duration),
	)

	return report, nil
}
