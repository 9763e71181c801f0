package places

import (
	"context"
	"sort"
	"time"

	"place-manager/feature/places/models"

	"go.uber.org/zap"
)

// Store holds the read queries the service needs.
type Store interface {
	ListAll(ctx context.Context) ([]models.Place, error)
	GetByID(ctx context.Context, id int64) (*models.Place, error)
	ListUpdatedSince(ctx context.Context, t time.Time) ([]models.Place, error)
}

// Service serves the read side of the place store.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new places service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every place ordered by id.
func (s *Service) List(ctx context.Context) ([]models.PlaceResponse, error) {
	places, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return toResponses(places), nil
}

// ListUpdatedSince returns places updated after t, oldest update first.
func (s *Service) ListUpdatedSince(ctx context.Context, t time.Time) ([]models.PlaceResponse, error) {
	places, err := s.store.ListUpdatedSince(ctx, t)
	if err != nil {
		return nil, err
	}
	return toResponses(places), nil
}

// Get returns one place or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*models.PlaceResponse, error) {
	place, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := place.ToResponse()
	return &resp, nil
}

func toResponses(places []models.Place) []models.PlaceResponse {
	out := make([]models.PlaceResponse, len(places))
	for i, p := range places {
		out[i] = p.ToResponse()
	}
	return out
}
