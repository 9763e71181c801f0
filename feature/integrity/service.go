package integrity

import (
	"context"

	"place-manager/feature/integrity/checks"
	"place-manager/feature/overpass"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	cache  overpass.Cache
	logger *zap.Logger
}

// NewService creates a new integrity service. cache may be nil.
func NewService(db *gorm.DB, cache overpass.Cache, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// CheckSchema compares the places table with the model.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckPlaces summarizes the stored places.
func (s *Service) CheckPlaces(ctx context.Context) (*checks.PlacesReport, error) {
	return checks.CheckPlaces(ctx, s.db)
}

// CheckCache inspects the cached snapshot.
func (s *Service) CheckCache(ctx context.Context) (*checks.CacheReport, error) {
	return checks.CheckCache(ctx, s.cache)
}
