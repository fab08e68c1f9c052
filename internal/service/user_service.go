package service

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/repository"
)

// UserService exposes user management operations.
type UserService interface {
	CreateUser(ctx context.Context, user *dto.UserDTO) (*dto.UserDTO, error)
	GetUser(ctx context.Context, id int64) (*dto.UserDTO, error)
	ListUsers(ctx context.Context) ([]dto.UserDTO, error)
	UpdateUser(ctx context.Context, id int64, user *dto.UserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo      repository.UserRepository
	validator *UserValidator
}

// NewUserService builds a UserService with repository and validator.
func NewUserService(repo repository.UserRepository, validator *UserValidator) UserService {
	return &userService{repo: repo, validator: validator}
}

func (s *userService) CreateUser(ctx context.Context, user *dto.UserDTO) (*dto.UserDTO, error) {
	if err := s.validator.ValidateForCreate(ctx, user); err != nil {
		return nil, err
	}

	record := user.ToModel()
	record.ID = 0
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, errors.Internal("create user: %v", err)
	}
	return dto.NewUserDTO(record), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*dto.UserDTO, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("User not found with id: %d", id)
		}
		return nil, err
	}
	return dto.NewUserDTO(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserDTO(&users[i]))
	}
	return result, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, user *dto.UserDTO) (*dto.UserDTO, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("User not found with id: %d", id)
		}
		return nil, err
	}

	if user != nil {
		// The path id wins over whatever the body carries.
		user.ID = uint(id)
	}
	if err := s.validator.ValidateForUpdate(ctx, user); err != nil {
		return nil, err
	}

	user.ApplyTo(existing)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, errors.Internal("update user: %v", err)
	}
	return dto.NewUserDTO(existing), nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByID(ctx, uint(id))
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("User not found with id: %d", id)
	}
	return s.repo.DeleteByID(ctx, uint(id))
}
