package service

import (
	"context"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/repository"
)

// emailPattern is intentionally loose: local-part@domain, nothing stricter.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// UserValidator enforces the user business rules, including uniqueness
// checks against the store. It is constructed explicitly and passed into the
// user service rather than looked up ambiently.
type UserValidator struct {
	users repository.UserRepository
}

// NewUserValidator creates a new user validator.
func NewUserValidator(users repository.UserRepository) *UserValidator {
	return &UserValidator{users: users}
}

// ValidateForCreate checks field rules and rejects duplicate username/email.
//
// The existence check and the later insert are not atomic; two concurrent
// creates with the same username can both pass here. The unique index is the
// final backstop.
func (v *UserValidator) ValidateForCreate(ctx context.Context, user *dto.UserDTO) error {
	if user == nil {
		return errors.Validation("User data cannot be null")
	}
	if err := v.validateBasicFields(user); err != nil {
		return err
	}

	taken, err := v.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("User already exists with username: %s", user.Username)
	}

	taken, err = v.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return errors.Conflict("User already exists with email: %s", user.Email)
	}
	return nil
}

// ValidateForUpdate checks field rules and rejects duplicates, excluding the
// record being updated from the uniqueness checks.
func (v *UserValidator) ValidateForUpdate(ctx context.Context, user *dto.UserDTO) error {
	if user == nil {
		return errors.Validation("User data cannot be null")
	}
	if user.ID == 0 {
		return errors.Validation("User ID is required for update")
	}
	if err := v.validateBasicFields(user); err != nil {
		return err
	}

	existing, err := v.users.FindByUsername(ctx, user.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil && existing.ID != user.ID {
		return errors.Conflict("User already exists with username: %s", user.Username)
	}

	existing, err = v.users.FindByEmail(ctx, user.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil && existing.ID != user.ID {
		return errors.Conflict("User already exists with email: %s", user.Email)
	}
	return nil
}

// ValidateID checks an id used for mutation or lookup operations.
func (v *UserValidator) ValidateID(id int64) error {
	if id <= 0 {
		return errors.Validation("User ID must be a positive number")
	}
	return nil
}

func (v *UserValidator) validateBasicFields(user *dto.UserDTO) error {
	if strings.TrimSpace(user.Username) == "" {
		return errors.Validation("Username is required")
	}
	if len(user.Username) < 3 || len(user.Username) > 100 {
		return errors.Validation("Username must be between 3 and 100 characters")
	}
	if strings.TrimSpace(user.Email) == "" {
		return errors.Validation("Email is required")
	}
	if !emailPattern.MatchString(user.Email) {
		return errors.Validation("Email format is invalid")
	}
	if strings.TrimSpace(user.FirstName) == "" {
		return errors.Validation("First name is required")
	}
	if strings.TrimSpace(user.LastName) == "" {
		return errors.Validation("Last name is required")
	}
	return nil
}
