package service

import (
	"context"

	"eventhub/internal/cache"
	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// EventService orchestrates event listing, creation and enrichment by
// composing the category and location resolvers.
type EventService interface {
	// ListEvents returns active events as DTOs with the derived
	// category/location fields left empty.
	ListEvents(ctx context.Context) ([]dto.EventDTO, error)
	// ListEventsWithDetails returns active events with the derived fields
	// populated from one bulk lookup per foreign-key type.
	ListEventsWithDetails(ctx context.Context) ([]dto.EventDTO, error)
	// CreateEvent resolves the category name and city into foreign keys
	// and persists a new active event.
	CreateEvent(ctx context.Context, req *dto.EventDTO) (*model.Event, error)
	// ListCategories returns every category with its live event count.
	ListCategories(ctx context.Context) ([]dto.EventCategoryDTO, error)
}

type eventService struct {
	events     repository.EventRepository
	categories CategoryService
	locations  LocationService
	cache      *cache.Client
}

// NewEventService creates a new event service.
func NewEventService(
	events repository.EventRepository,
	categories CategoryService,
	locations LocationService,
	cache *cache.Client,
) EventService {
	return &eventService{
		events:     events,
		categories: categories,
		locations:  locations,
		cache:      cache,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]dto.EventDTO, error) {
	events, err := s.events.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EventDTO, 0, len(events))
	for i := range events {
		result = append(result, *dto.NewEventDTO(&events[i]))
	}
	return result, nil
}

// ListEventsWithDetails collects the distinct category and location ids
// across the batch, bulk-resolves each set in a single call, and replays the
// resulting maps onto the DTOs. An event whose reference no longer resolves
// (deleted out-of-band) keeps its derived fields empty; one dangling id must
// not abort the rest of the page.
func (s *eventService) ListEventsWithDetails(ctx context.Context) ([]dto.EventDTO, error) {
	events, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	locationIDs := distinctIDs(events, func(e dto.EventDTO) uint { return e.LocationID })
	categoryIDs := distinctIDs(events, func(e dto.EventDTO) uint { return e.CategoryID })

	locationsByID, err := s.locations.GetByIDs(ctx, locationIDs)
	if err != nil {
		return nil, err
	}
	categoriesByID, err := s.categories.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	for i := range events {
		if location, ok := locationsByID[events[i].LocationID]; ok {
			events[i].Location = location.City + ", " + location.Country
		}
		if category, ok := categoriesByID[events[i].CategoryID]; ok {
			events[i].Category = category.Name
		}
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.EventDTO) (*model.Event, error) {
	if req == nil {
		return nil, errors.Validation("Event request body is required")
	}

	category, err := s.categories.GetByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	location, err := s.locations.GetByCity(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Name:           req.Name,
		DisplayPicture: req.DisplayPicture,
		Description:    req.Description,
		HostedFrom:     req.HostedFrom,
		HostedTo:       req.HostedTo,
		Venue:          req.Venue,
		TicketAmount:   req.TicketAmount,
		Status:         model.EventStatusActive,
		Capacity:       req.Capacity,
		TicketsBooked:  0,
		CategoryID:     category.ID,
		LocationID:     location.ID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, errors.Internal("create event: %v", err)
	}

	// The new event changes the per-category counts.
	_ = s.cache.Delete(ctx, categoryCountsCacheKey)

	return event, nil
}

func (s *eventService) ListCategories(ctx context.Context) ([]dto.EventCategoryDTO, error) {
	return s.categories.ListWithCounts(ctx)
}

// distinctIDs collapses duplicate foreign keys so each bulk lookup runs once
// per referenced row, not once per event.
func distinctIDs(events []dto.EventDTO, key func(dto.EventDTO) uint) []uint {
	seen := make(map[uint]struct{}, len(events))
	ids := make([]uint, 0, len(events))
	for _, event := range events {
		id := key(event)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
