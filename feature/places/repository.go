package places

import (
	"context"
	"errors"
	"fmt"
	"time"

	"place-manager/core/reconcile"
	"place-manager/feature/places/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no place has the requested id.
var ErrNotFound = errors.New("place not found")

// Repository is the gorm-backed place store.
// It serves the read queries and implements reconcile.Gateway.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every place, soft-deleted ones included, in no particular order.
func (r *Repository) ListAll(ctx context.Context) ([]models.Place, error) {
	var places []models.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

// GetByID returns the place with the given id or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	var place models.Place
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place %d: %w", id, err)
	}
	return &place, nil
}

// ListUpdatedSince returns places with updated_at strictly after t, oldest first.
func (r *Repository) ListUpdatedSince(ctx context.Context, t time.Time) ([]models.Place, error) {
	var places []models.Place
	err := r.db.WithContext(ctx).
		Where("updated_at > ?", t.UTC()).
		Order("updated_at, id").
		Find(&places).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list places updated since %s: %w", t.Format(time.RFC3339), err)
	}
	return places, nil
}

// ListCached returns the reconcile view of every place.
func (r *Repository) ListCached(ctx context.Context) ([]reconcile.Cached, error) {
	places, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cached := make([]reconcile.Cached, len(places))
	for i, p := range places {
		cached[i] = p.ToCached()
	}
	return cached, nil
}

// Transaction implements reconcile.Gateway. The transaction commits only when fn
// returns nil; any error or panic rolls it back.
func (r *Repository) Transaction(ctx context.Context, fn func(tx reconcile.Txn) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txn{db: tx})
	})
}

// txn implements reconcile.Txn on a gorm transaction.
type txn struct {
	db *gorm.DB
}

func (t *txn) Insert(ctx context.Context, e reconcile.Element, tags string, now time.Time) error {
	var count int64
	if err := t.db.WithContext(ctx).Model(&models.Place{}).Where("id = ?", e.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check place %d: %w", e.ID, err)
	}
	if count > 0 {
		return reconcile.ErrDuplicateID
	}

	place := models.Place{
		ID:        e.ID,
		Lat:       e.Lat,
		Lon:       e.Lon,
		Tags:      datatypes.JSON(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.WithContext(ctx).Create(&place).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return reconcile.ErrDuplicateID
		}
		return fmt.Errorf("failed to insert place %d: %w", e.ID, err)
	}
	return nil
}

func (t *txn) UpdateTags(ctx context.Context, id int64, tags string, now time.Time) error {
	result := t.db.WithContext(ctx).Model(&models.Place{}).
		Where("id = ?", id).
		Updates(map[string]any{"tags": datatypes.JSON(tags), "updated_at": now})
	return checkAffected(result, "update tags of", id)
}

func (t *txn) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	result := t.db.WithContext(ctx).Model(&models.Place{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	return checkAffected(result, "soft-delete", id)
}

func (t *txn) Revive(ctx context.Context, id int64, now time.Time) error {
	result := t.db.WithContext(ctx).Model(&models.Place{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]any{"deleted_at": nil, "updated_at": now})
	return checkAffected(result, "revive", id)
}

func checkAffected(result *gorm.DB, verb string, id int64) error {
	if result.Error != nil {
		return fmt.Errorf("failed to %s place %d: %w", verb, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return reconcile.ErrUnknownID
	}
	return nil
}
