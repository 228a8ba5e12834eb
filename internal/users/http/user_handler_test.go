package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	usersDomain "github.com/allisson/filebucket/internal/users/domain"
	"github.com/allisson/filebucket/internal/users/http/dto"
	usersUseCase "github.com/allisson/filebucket/internal/users/usecase"
)

// setupUserHandler creates a test handler with mocked dependencies.
func setupUserHandler(t *testing.T) (*UserHandler, *mockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(mockUseCase, logger), mockUseCase
}

// createTestContext builds a gin test context with an optional JSON body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestUserHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		userID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		request := dto.RegisterUserRequest{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "Str0ng!Passw0rd",
		}

		mockUseCase.On("Register", mock.Anything, usersUseCase.RegisterUserInput{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "Str0ng!Passw0rd",
		}).Return(&usersDomain.User{
			ID:        userID,
			Name:      "alice",
			Email:     "alice@example.com",
			CreatedAt: now,
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), response.ID)
		assert.Equal(t, "alice", response.Name)
		assert.Equal(t, "alice@example.com", response.Email)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidEmail", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		request := dto.RegisterUserRequest{
			Name:     "alice",
			Email:    "not-an-email",
			Password: "Str0ng!Passw0rd",
		}

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Error_ShortPassword", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		request := dto.RegisterUserRequest{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "short",
		}

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Error_EmailTaken", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		request := dto.RegisterUserRequest{
			Name:     "alice",
			Email:    "alice@example.com",
			Password: "Str0ng!Passw0rd",
		}

		mockUseCase.On("Register", mock.Anything, mock.Anything).
			Return(nil, usersDomain.ErrUserAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", request)
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestUserHandler_MeHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		userID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Get", mock.Anything, userID).
			Return(&usersDomain.User{ID: userID, Name: "alice", Email: "alice@example.com"}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/users/me", nil)
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), userID))
		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), response.ID)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		handler, mockUseCase := setupUserHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/users/me", nil)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}
