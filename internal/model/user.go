package model

import "time"

// User represents a registered user of the platform.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName   string    `json:"firstName" gorm:"size:255;not null"`
	LastName    string    `json:"lastName" gorm:"size:255;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:20"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
