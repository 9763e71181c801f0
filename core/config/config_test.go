package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "btcmap.db", cfg.Database.Name)
	assert.Equal(t, 0, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://overpass-api.de/api/interpreter", cfg.Overpass.Endpoint)
	assert.Equal(t, 330, cfg.Overpass.TimeoutSeconds)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, 0, cfg.Sync.IntervalMinutes)
	assert.False(t, cfg.Sync.ReviveDeleted)
	assert.Equal(t, 900, cfg.Sync.LockTTLSeconds)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("SYNC_REVIVE_DELETED", "true")
	t.Setenv("SYNC_INTERVAL_MINUTES", "60")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Sync.ReviveDeleted)
	assert.Equal(t, 60, cfg.Sync.IntervalMinutes)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CACHE_BACKEND=object\nSERVER_API_KEY=secret\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CACHE_BACKEND")
		os.Unsetenv("SERVER_API_KEY")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "object", cfg.Cache.Backend)
	assert.Equal(t, "secret", cfg.Server.ApiKey)
}
