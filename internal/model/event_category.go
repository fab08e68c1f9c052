package model

// EventCategory classifies events. Lookups by name are case-insensitive.
type EventCategory struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}
