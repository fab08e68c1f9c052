package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"eventhub/internal/dto"
	"eventhub/internal/errors"
	"eventhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, NewUserValidator(repo))
}

func validUserDTO() *dto.UserDTO {
	return &dto.UserDTO{
		Username:    "alice",
		Email:       "a@example.com",
		FirstName:   "Alice",
		LastName:    "A",
		PhoneNumber: "123",
	}
}

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	mockRepo.On("ExistsByEmail", mock.Anything, "a@example.com").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		user := args.Get(1).(*model.User)
		user.ID = 1
		user.CreatedAt = time.Now()
		user.UpdatedAt = time.Now()
	}).Return(nil)

	svc := newUserService(mockRepo)
	created, err := svc.CreateUser(context.Background(), validUserDTO())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "a@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	svc := newUserService(mockRepo)
	created, err := svc.CreateUser(context.Background(), validUserDTO())

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Equal(t, errors.KindConflict, errors.KindOf(err))
	assert.Contains(t, err.Error(), "already exists with username: alice")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.User{
		ID:       5,
		Username: "bob",
		Email:    "b@example.com",
	}, nil)

	svc := newUserService(mockRepo)
	user, err := svc.GetUser(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newUserService(mockRepo)
	user, err := svc.GetUser(context.Background(), 99)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.Contains(t, err.Error(), "User not found with id: 99")
}

func TestUserService_GetUser_InvalidID(t *testing.T) {
	svc := newUserService(new(MockUserRepository))

	user, err := svc.GetUser(context.Background(), 0)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestUserService_UpdateUser_ExcludesSelfFromUniqueness(t *testing.T) {
	existing := &model.User{ID: 5, Username: "alice", Email: "a@example.com", FirstName: "Alice", LastName: "A"}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	// Username and email resolve back to the record under update.
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil)
	mockRepo.On("FindByEmail", mock.Anything, "a@example.com").Return(existing, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	update := validUserDTO()
	update.FirstName = "Alicia"

	svc := newUserService(mockRepo)
	updated, err := svc.UpdateUser(context.Background(), 5, update)

	assert.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_UsernameTakenByOther(t *testing.T) {
	existing := &model.User{ID: 5, Username: "alice", Email: "a@example.com"}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 8, Username: "alice"}, nil)

	svc := newUserService(mockRepo)
	updated, err := svc.UpdateUser(context.Background(), 5, validUserDTO())

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, errors.KindConflict, errors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := newUserService(mockRepo)
	updated, err := svc.UpdateUser(context.Background(), 7, validUserDTO())

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByID", mock.Anything, uint(5)).Return(true, nil)
	mockRepo.On("DeleteByID", mock.Anything, uint(5)).Return(nil)

	svc := newUserService(mockRepo)
	err := svc.DeleteUser(context.Background(), 5)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("ExistsByID", mock.Anything, uint(99)).Return(false, nil)

	svc := newUserService(mockRepo)
	err := svc.DeleteUser(context.Background(), 99)

	assert.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestUserService_ListUsers_Idempotent(t *testing.T) {
	users := []model.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindAll", mock.Anything).Return(users, nil)

	svc := newUserService(mockRepo)
	first, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)
	second, err := svc.ListUsers(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}
