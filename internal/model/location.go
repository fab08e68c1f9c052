package model

import "time"

// Location is a city an event can be hosted in. Rows are reference data
// seeded ahead of time; the API never mutates them.
type Location struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	City      string    `json:"city" gorm:"uniqueIndex;size:255;not null"`
	State     string    `json:"state" gorm:"uniqueIndex;size:255;not null"`
	Country   string    `json:"country" gorm:"uniqueIndex;size:255;not null"`
	Pincode   string    `json:"pincode" gorm:"uniqueIndex;size:20;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
