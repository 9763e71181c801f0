package checks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"place-manager/feature/overpass"
)

// CacheReport describes the cached Overpass snapshot.
type CacheReport struct {
	Location   string     `json:"location"`
	Present    bool       `json:"present"`
	Bytes      int        `json:"bytes"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	Elements   int        `json:"elements"`
	Error      string     `json:"error,omitempty"`
	Status     string     `json:"status"` // "ok", "empty", "invalid"
}

// CheckCache loads the cached snapshot and verifies that it normalizes.
// A snapshot that does not normalize would fail the next sync run.
func CheckCache(ctx context.Context, cache overpass.Cache) (*CacheReport, error) {
	if cache == nil {
		return nil, fmt.Errorf("snapshot cache is not configured")
	}

	report := &CacheReport{Location: cache.Location(), Status: "empty"}

	entry, err := cache.Load(ctx)
	if errors.Is(err, overpass.ErrCacheMiss) {
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	report.Present = true
	report.Bytes = len(entry.Data)
	modified := entry.ModifiedAt
	report.ModifiedAt = &modified

	result, err := overpass.Normalize(entry.Data)
	if err != nil {
		report.Status = "invalid"
		report.Error = err.Error()
		return report, nil
	}
	report.Elements = len(result.Elements)
	report.Status = "ok"
	return report, nil
}
