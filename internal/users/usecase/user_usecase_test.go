package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/filebucket/internal/errors"
	usersDomain "github.com/allisson/filebucket/internal/users/domain"
	"github.com/allisson/filebucket/internal/users/usecase/mocks"
)

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(nil).Once()

		user, err := uc.Register(ctx, RegisterUserInput{
			Name:     "Test User",
			Email:    "Test@Example.com",
			Password: "Str0ng!Password",
		})
		require.NoError(t, err)
		assert.Equal(t, "Test User", user.Name)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEqual(t, "Str0ng!Password", user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		_, err = uc.Register(ctx, RegisterUserInput{
			Name:     "Test User",
			Email:    "not-an-email",
			Password: "Str0ng!Password",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("weak password", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		_, err = uc.Register(ctx, RegisterUserInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "weakpassword",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(usersDomain.ErrUserAlreadyExists).Once()

		_, err = uc.Register(ctx, RegisterUserInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "Str0ng!Password",
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestUserUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		user := &usersDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "test@example.com"}
		mockRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()

		got, err := uc.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := &mocks.MockUserRepository{}
		uc, err := NewUserUseCase(mockRepo)
		require.NoError(t, err)

		id := uuid.Must(uuid.NewV7())
		mockRepo.On("GetByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

		_, err = uc.Get(ctx, id)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, usersDomain.ErrUserNotFound))
	})
}

func TestUserUseCase_GetByEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := &mocks.MockUserRepository{}
	uc, err := NewUserUseCase(mockRepo)
	require.NoError(t, err)

	user := &usersDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "test@example.com"}
	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(user, nil).Once()

	// Lookup is case-insensitive on the caller side.
	got, err := uc.GetByEmail(ctx, " Test@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}
