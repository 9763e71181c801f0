package checks

import (
	"context"
	"fmt"
	"time"

	"place-manager/feature/places/models"

	"gorm.io/gorm"
)

// PlacesReport summarizes the stored place set.
type PlacesReport struct {
	Live          int64      `json:"live"`
	Deleted       int64      `json:"deleted"`
	LastUpdatedAt *time.Time `json:"last_updated_at,omitempty"`
}

// CheckPlaces counts live and soft-deleted places and finds the latest update.
func CheckPlaces(ctx context.Context, db *gorm.DB) (*PlacesReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &PlacesReport{}
	q := db.WithContext(ctx).Model(&models.Place{})

	if err := q.Session(&gorm.Session{}).Where("deleted_at IS NULL").Count(&report.Live).Error; err != nil {
		return nil, fmt.Errorf("failed to count live places: %w", err)
	}
	if err := q.Session(&gorm.Session{}).Where("deleted_at IS NOT NULL").Count(&report.Deleted).Error; err != nil {
		return nil, fmt.Errorf("failed to count deleted places: %w", err)
	}

	var latest []models.Place
	if err := db.WithContext(ctx).Order("updated_at desc").Limit(1).Find(&latest).Error; err != nil {
		return nil, fmt.Errorf("failed to find latest update: %w", err)
	}
	if len(latest) == 1 {
		t := latest[0].UpdatedAt.UTC()
		report.LastUpdatedAt = &t
	}
	return report, nil
}
