package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatusActive marks events visible in listings.
const EventStatusActive int16 = 1

// Event is a hosted event referencing a category and a location by id.
// It does not own either; many events may share one row of each.
type Event struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	DisplayPicture string          `json:"displayPicture,omitempty" gorm:"size:512"`
	Description    string          `json:"description,omitempty" gorm:"type:text"`
	HostedFrom     time.Time       `json:"hostedFrom" gorm:"not null"`
	HostedTo       time.Time       `json:"hostedTo" gorm:"not null"`
	Venue          string          `json:"venue" gorm:"size:255;not null"`
	TicketAmount   decimal.Decimal `json:"ticketAmount" gorm:"type:decimal(10,2);not null"`
	Status         int16           `json:"status" gorm:"not null;default:1"`
	Capacity       int             `json:"capacity" gorm:"not null"`
	TicketsBooked  int             `json:"ticketsBooked" gorm:"not null;default:0"`
	CategoryID     uint            `json:"categoryId" gorm:"not null;index"`
	LocationID     uint            `json:"locationId" gorm:"not null;index"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
