package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const (
	cityIndexCacheKey = "locations:city-index"
	cityIndexCacheTTL = 5 * time.Minute
)

// LocationService resolves location references for the event workflow.
type LocationService interface {
	// CityIndex maps every known city name to its location id.
	CityIndex(ctx context.Context) (map[string]uint, error)
	// GetByIDs bulk-resolves location ids. Ids without a row are absent
	// from the returned map, never an error.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]model.Location, error)
	// GetByCity resolves a single location by exact city match.
	GetByCity(ctx context.Context, city string) (*model.Location, error)
}

type locationService struct {
	repo  repository.LocationRepository
	cache *cache.Client
}

// NewLocationService creates a new location service.
func NewLocationService(repo repository.LocationRepository, cache *cache.Client) LocationService {
	return &locationService{repo: repo, cache: cache}
}

// CityIndex builds the city→id mapping, served from cache when possible.
// Locations are immutable reference data, so a short TTL is the only
// invalidation needed.
func (s *locationService) CityIndex(ctx context.Context) (map[string]uint, error) {
	if data, _ := s.cache.Get(ctx, cityIndexCacheKey); data != nil {
		var cached map[string]uint
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.repo.FindCityIDs(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]uint, len(rows))
	for _, row := range rows {
		index[row.City] = row.ID
	}

	if payload, err := json.Marshal(index); err == nil {
		_ = s.cache.Set(ctx, cityIndexCacheKey, payload, cityIndexCacheTTL)
	}
	return index, nil
}

func (s *locationService) GetByIDs(ctx context.Context, ids []uint) (map[uint]model.Location, error) {
	if len(ids) == 0 {
		return map[uint]model.Location{}, nil
	}
	locations, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Location, len(locations))
	for _, location := range locations {
		byID[location.ID] = location
	}
	return byID, nil
}

func (s *locationService) GetByCity(ctx context.Context, city string) (*model.Location, error) {
	location, err := s.repo.FindByCity(ctx, city)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Location not found with city: %s", city)
		}
		return nil, err
	}
	return location, nil
}
