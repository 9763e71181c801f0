package sync

import "time"

// Config holds configuration for sync runs.
type Config struct {
	// IntervalMinutes schedules a run every N minutes from `start`. Zero disables scheduling.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"0"`
	// ReviveDeleted clears deleted_at when a soft-deleted place reappears.
	ReviveDeleted bool `mapstructure:"revive_deleted" default:"false"`
	// LockKey is the redis key guarding against overlapping runs.
	LockKey string `mapstructure:"lock_key" default:"place-manager:sync"`
	// LockTTLSeconds bounds how long a crashed run can hold the lock.
	LockTTLSeconds int `mapstructure:"lock_ttl_seconds" default:"900"`
}

// Interval returns the scheduling interval, zero when disabled.
func (c Config) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// LockTTL returns the lock expiry, defaulting to 15 minutes.
func (c Config) LockTTL() time.Duration {
	if c.LockTTLSeconds <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.LockTTLSeconds) * time.Second
}
