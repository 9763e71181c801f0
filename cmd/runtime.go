package cmd

import (
	"fmt"

	"place-manager/core/config"
	"place-manager/core/database"
	"place-manager/core/lock"
	"place-manager/core/logger"
	"place-manager/core/storage"
	"place-manager/feature/overpass"
	"place-manager/feature/places"
	"place-manager/feature/places/models"
	placeSync "place-manager/feature/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadRuntime loads the configuration and builds the logger every command starts with.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openPlaces connects to the configured database and migrates the places table.
func openPlaces(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, &models.Place{}); err != nil {
		return nil, err
	}
	return db, nil
}

// newCache builds the snapshot cache. Only the object backend needs object storage.
func newCache(cfg *config.Config) (overpass.Cache, error) {
	var client storage.Client
	if cfg.Cache.Backend == overpass.CacheBackendObject {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}
	return overpass.NewCache(cfg.Cache, client, cfg.Storage.Bucket, cfg.Storage.Region)
}

// newSyncService wires the fetcher, cache, store and lock into a sync service.
// The returned close function releases the lock backend.
func newSyncService(cfg *config.Config, db *gorm.DB, l *zap.Logger) (*placeSync.Service, func() error, error) {
	cache, err := newCache(cfg)
	if err != nil {
		return nil, nil, err
	}

	locker, closeLock := lock.New(cfg.Redis)
	fetcher := overpass.NewFetcher(cfg.Overpass, nil, l)
	svc := placeSync.NewService(fetcher, cache, places.NewRepository(db), locker, cfg.Sync, l)
	return svc, closeLock, nil
}
