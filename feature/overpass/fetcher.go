package overpass

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"place-manager/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 512

// Fetcher obtains raw snapshots from the cache or from Overpass.
// It never touches the database.
type Fetcher struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
	group  singleflight.Group
}

// NewFetcher creates a fetcher. A nil client gets one bounded by cfg.TimeoutSeconds.
func NewFetcher(cfg Config, client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		timeout := cfg.TimeoutSeconds
		if timeout <= 0 {
			timeout = 330
		}
		client = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	}
	return &Fetcher{cfg: cfg, client: client, logger: logger}
}

// Fetch returns the cached payload if one exists. Otherwise it queries Overpass
// once, stores the response in cache and returns it.
// Concurrent calls for the same cache location share one request. The shared
// request is detached from any single caller, so a caller that gives up returns
// ctx.Err() without failing the others.
func (f *Fetcher) Fetch(ctx context.Context, cache Cache) ([]byte, error) {
	ch := f.group.DoChan(cache.Location(), func() (any, error) {
		return f.fetch(context.WithoutCancel(ctx), cache)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (f *Fetcher) fetch(ctx context.Context, cache Cache) ([]byte, error) {
	entry, err := cache.Load(ctx)
	if err == nil {
		f.logger.Info("Using cached Overpass response",
			zap.String("location", cache.Location()),
			zap.Time("modified_at", entry.ModifiedAt),
			zap.Int("bytes", len(entry.Data)),
		)
		metrics.SnapshotFetchTotal.WithLabelValues(metrics.SourceCache).Inc()
		return entry.Data, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		return nil, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	f.logger.Info("Snapshot cache is empty, querying Overpass", zap.String("endpoint", f.cfg.Endpoint))
	start := time.Now()

	data, err := f.query(ctx)
	if err != nil {
		metrics.SnapshotFetchFailuresTotal.Inc()
		return nil, err
	}
	metrics.SnapshotFetchTotal.WithLabelValues(metrics.SourceNetwork).Inc()

	f.logger.Info("Received Overpass response",
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)

	if err := cache.Store(ctx, data); err != nil {
		f.logger.Warn("Failed to store Overpass response in cache",
			zap.String("location", cache.Location()),
			zap.Error(err),
		)
	}
	return data, nil
}

func (f *Fetcher) query(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.Endpoint, strings.NewReader(f.cfg.query()))
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return data, nil
}
