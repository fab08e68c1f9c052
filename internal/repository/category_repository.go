package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// CategoryWithCount is the read model for the category listing: a category
// plus the number of events currently referencing it.
type CategoryWithCount struct {
	ID         uint
	Name       string
	EventCount int64
}

// CategoryRepository defines event category lookup operations.
type CategoryRepository interface {
	ListWithEventCounts(ctx context.Context) ([]CategoryWithCount, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.EventCategory, error)
	FindByName(ctx context.Context, name string) (*model.EventCategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListWithEventCounts returns every category ordered by name with a live
// event count. The LEFT JOIN keeps categories with no events in the result.
func (r *categoryRepository) ListWithEventCounts(ctx context.Context) ([]CategoryWithCount, error) {
	var rows []CategoryWithCount
	err := r.db.WithContext(ctx).
		Model(&model.EventCategory{}).
		Select("event_categories.id, event_categories.name, COUNT(events.id) AS event_count").
		Joins("LEFT JOIN events ON events.category_id = event_categories.id").
		Group("event_categories.id, event_categories.name").
		Order("event_categories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDs returns the categories matching the given ids. Unknown ids are
// simply absent from the result.
func (r *categoryRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.EventCategory, error) {
	var categories []model.EventCategory
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByName finds a category by case-insensitive exact name match.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.EventCategory, error) {
	var category model.EventCategory
	if err := r.db.WithContext(ctx).Where("UPPER(name) = UPPER(?)", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
