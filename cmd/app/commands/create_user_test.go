package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/filebucket/internal/errors"
	usersDomain "github.com/allisson/filebucket/internal/users/domain"
	usersUseCase "github.com/allisson/filebucket/internal/users/usecase"
)

// mockUserUseCase lives here because a shared mock of the use case interface
// would import the use case package that imports the mocks package back
// through its own tests.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Register(
	ctx context.Context,
	input usersUseCase.RegisterUserInput,
) (*usersDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Get(ctx context.Context, id uuid.UUID) (*usersDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersDomain.User), args.Error(1)
}

func (m *mockUserUseCase) GetByEmail(ctx context.Context, email string) (*usersDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usersDomain.User), args.Error(1)
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	userID := uuid.Must(uuid.NewV7())

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		input := usersUseCase.RegisterUserInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "password123",
		}
		user := &usersDomain.User{
			ID:    userID,
			Name:  "Test User",
			Email: "test@example.com",
		}

		mockUseCase.On("Register", ctx, input).Return(user, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Test User", "test@example.com", "password123", "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "test@example.com")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}
		user := &usersDomain.User{
			ID:    userID,
			Name:  "Test User",
			Email: "test@example.com",
		}

		mockUseCase.On("Register", ctx, mock.Anything).Return(user, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Test User", "test@example.com", "password123", "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"user_id"`)
		require.Contains(t, out.String(), userID.String())
	})

	t.Run("email-taken", func(t *testing.T) {
		mockUseCase := &mockUserUseCase{}

		mockUseCase.On("Register", ctx, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrConflict, "email already in use"))

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Test User", "taken@example.com", "password123", "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
	})
}
