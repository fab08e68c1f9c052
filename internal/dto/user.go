package dto

import (
	"time"

	"eventhub/internal/model"
)

// UserDTO is the user shape exposed at the API boundary. Timestamps are
// server-assigned; values sent by clients are ignored.
type UserDTO struct {
	ID          uint      `json:"id,omitempty"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewUserDTO maps a persisted user to its API shape.
func NewUserDTO(user *model.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToModel maps the DTO to a new user entity. Timestamps are left for the
// store to assign.
func (d *UserDTO) ToModel() *model.User {
	if d == nil {
		return nil
	}
	return &model.User{
		ID:          d.ID,
		Username:    d.Username,
		Email:       d.Email,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
	}
}

// ApplyTo overwrites the mutable fields of an existing user with DTO data.
func (d *UserDTO) ApplyTo(user *model.User) {
	if d == nil || user == nil {
		return
	}
	user.Username = d.Username
	user.Email = d.Email
	user.FirstName = d.FirstName
	user.LastName = d.LastName
	user.PhoneNumber = d.PhoneNumber
}
