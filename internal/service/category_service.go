package service

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const (
	categoryCountsCacheKey = "categories:with-counts"
	categoryCountsCacheTTL = time.Minute
)

// CategoryService resolves event category references.
type CategoryService interface {
	// ListWithCounts returns every category ordered by name with a live
	// event count, zero included.
	ListWithCounts(ctx context.Context) ([]dto.EventCategoryDTO, error)
	// GetByIDs bulk-resolves category ids. Ids without a row are absent
	// from the returned map, never an error.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]model.EventCategory, error)
	// GetByName resolves a category by case-insensitive exact name match.
	GetByName(ctx context.Context, name string) (*model.EventCategory, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) ListWithCounts(ctx context.Context) ([]dto.EventCategoryDTO, error) {
	if data, _ := s.cache.Get(ctx, categoryCountsCacheKey); data != nil {
		var cached []dto.EventCategoryDTO
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.repo.ListWithEventCounts(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]dto.EventCategoryDTO, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, dto.EventCategoryDTO{
			ID:           row.ID,
			CategoryName: row.Name,
			EventCount:   row.EventCount,
		})
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryCountsCacheKey, payload, categoryCountsCacheTTL)
	}
	return categories, nil
}

func (s *categoryService) GetByIDs(ctx context.Context, ids []uint) (map[uint]model.EventCategory, error) {
	if len(ids) == 0 {
		return map[uint]model.EventCategory{}, nil
	}
	categories, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.EventCategory, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}
	return byID, nil
}

func (s *categoryService) GetByName(ctx context.Context, name string) (*model.EventCategory, error) {
	category, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("Event category not found with name: %s", name)
		}
		return nil, err
	}
	return category, nil
}
