package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"eventhub/internal/model"
)

// EventDTO is the event shape exposed at the API boundary.
//
// Category and Location play a double role: on creation requests they carry
// the category name and the city to resolve into foreign keys; on enriched
// listings they carry the derived human-readable values. They are never
// persisted.
type EventDTO struct {
	ID             uint            `json:"id,omitempty"`
	Name           string          `json:"name" validate:"required"`
	DisplayPicture string          `json:"displayPicture,omitempty"`
	Description    string          `json:"description,omitempty"`
	HostedFrom     time.Time       `json:"hostedFrom" validate:"required"`
	HostedTo       time.Time       `json:"hostedTo" validate:"required"`
	Venue          string          `json:"venue" validate:"required"`
	TicketAmount   decimal.Decimal `json:"ticketAmount"`
	Status         int16           `json:"status"`
	Capacity       int             `json:"capacity" validate:"required"`
	TicketsBooked  int             `json:"ticketsBooked"`
	CategoryID     uint            `json:"categoryId"`
	LocationID     uint            `json:"locationId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Category       string          `json:"category,omitempty" validate:"required"`
	Location       string          `json:"location,omitempty" validate:"required"`
}

// NewEventDTO maps a persisted event to its API shape with the derived
// fields left empty.
func NewEventDTO(event *model.Event) *EventDTO {
	if event == nil {
		return nil
	}
	return &EventDTO{
		ID:             event.ID,
		Name:           event.Name,
		DisplayPicture: event.DisplayPicture,
		Description:    event.Description,
		HostedFrom:     event.HostedFrom,
		HostedTo:       event.HostedTo,
		Venue:          event.Venue,
		TicketAmount:   event.TicketAmount,
		Status:         event.Status,
		Capacity:       event.Capacity,
		TicketsBooked:  event.TicketsBooked,
		CategoryID:     event.CategoryID,
		LocationID:     event.LocationID,
		CreatedAt:      event.CreatedAt,
		UpdatedAt:      event.UpdatedAt,
	}
}

// EventCategoryDTO is a category annotated with its live event count.
type EventCategoryDTO struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"categoryName"`
	EventCount   int64  `json:"eventCount"`
}
