package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// CityID is a projection of a location to its city name and id.
type CityID struct {
	City string
	ID   uint
}

// LocationRepository defines location lookup operations.
type LocationRepository interface {
	FindCityIDs(ctx context.Context) ([]CityID, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Location, error)
	FindByCity(ctx context.Context, city string) (*model.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// FindCityIDs returns every location projected to (city, id), ordered by city.
func (r *locationRepository) FindCityIDs(ctx context.Context) ([]CityID, error) {
	var rows []CityID
	err := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Select("city, id").
		Order("city").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDs returns the locations matching the given ids. Unknown ids are
// simply absent from the result.
func (r *locationRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindByCity finds a location by exact city match.
func (r *locationRepository) FindByCity(ctx context.Context, city string) (*model.Location, error) {
	var location model.Location
	if err := r.db.WithContext(ctx).Where("city = ?", city).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}
