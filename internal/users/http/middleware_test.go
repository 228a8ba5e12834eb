package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	usersDomain "github.com/allisson/filebucket/internal/users/domain"
	usersUseCase "github.com/allisson/filebucket/internal/users/usecase"
)

// mockUserUseCase is a mock implementation of usecase.UserUseCase for testing.
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

var _ usersUseCase.UserUseCase = (*mockUserUseCase)(nil)

// identityTestRouter builds a router with the identity middleware and a probe
// route that echoes the user id the middleware stored.
func identityTestRouter(useCase usersUseCase.UserUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(IdentityMiddleware(useCase, logger))
	router.GET("/probe", func(c *gin.Context) {
		userID, ok := GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})

	return router
}

func TestIdentityMiddleware_MissingHeader(t *testing.T) {
	mockUseCase := &mockUserUseCase{}
	router := identityTestRouter(mockUseCase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestIdentityMiddleware_MalformedHeader(t *testing.T) {
	mockUseCase := &mockUserUseCase{}
	router := identityTestRouter(mockUseCase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(UserIDHeader, "not-a-uuid")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestIdentityMiddleware_UnknownUser(t *testing.T) {
	mockUseCase := &mockUserUseCase{}
	router := identityTestRouter(mockUseCase)

	userID := uuid.Must(uuid.NewV7())
	mockUseCase.On("Get", mock.Anything, userID).
		Return(nil, usersDomain.ErrUserNotFound).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(UserIDHeader, userID.String())
	router.ServeHTTP(w, req)

	// An unknown user is an authentication failure, not a 404.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestIdentityMiddleware_Success(t *testing.T) {
	mockUseCase := &mockUserUseCase{}
	router := identityTestRouter(mockUseCase)

	userID := uuid.Must(uuid.NewV7())
	mockUseCase.On("Get", mock.Anything, userID).
		Return(&usersDomain.User{ID: userID, Name: "alice", Email: "alice@example.com"}, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(UserIDHeader, userID.String())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), response["user_id"])
	mockUseCase.AssertExpectations(t)
}
