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

	bucketsDomain "github.com/allisson/filebucket/internal/buckets/domain"
	"github.com/allisson/filebucket/internal/buckets/http/dto"
	"github.com/allisson/filebucket/internal/buckets/usecase/mocks"
	usersHTTP "github.com/allisson/filebucket/internal/users/http"
)

// setupTestHandler creates a test handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*BucketHandler, *mocks.MockBucketUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockBucketUseCase := &mocks.MockBucketUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewBucketHandler(mockBucketUseCase, logger), mockBucketUseCase
}

// createTestContext builds a gin test context with an authenticated user and
// an optional JSON body.
func createTestContext(
	method, path string,
	userID uuid.UUID,
	body interface{},
) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		req = req.WithContext(usersHTTP.WithUserID(req.Context(), userID))
	}
	c.Request = req

	return c, w
}

func TestBucketHandler_CreateHandler(t *testing.T) {
	t.Run("Success_PlainBucket", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		bucketID := uuid.Must(uuid.NewV7())

		request := dto.CreateBucketRequest{Name: "reports"}

		mockUseCase.On("Create", mock.Anything, userID, "reports", (*bucketsDomain.Config)(nil)).
			Return(&bucketsDomain.Bucket{
				ID:        bucketID,
				Name:      "reports",
				UserID:    userID,
				CreatedAt: time.Now().UTC(),
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/buckets", userID, request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.BucketResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, bucketID.String(), response.ID)
		assert.Equal(t, "reports", response.Name)
		assert.Nil(t, response.Config)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_WithConfig", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		bucketID := uuid.Must(uuid.NewV7())

		request := dto.CreateBucketRequest{
			Name: "images",
			Config: &dto.BucketConfigRequest{
				AllowedFileTypes: []string{".png", "image/*"},
				MaxFileSize:      1 << 20,
			},
		}

		expectedConfig := &bucketsDomain.Config{
			AllowedFileTypes: []string{".png", "image/*"},
			MaxFileSize:      1 << 20,
		}

		mockUseCase.On("Create", mock.Anything, userID, "images", expectedConfig).
			Return(&bucketsDomain.Bucket{
				ID:     bucketID,
				Name:   "images",
				UserID: userID,
				Config: expectedConfig,
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/buckets", userID, request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.BucketResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotNil(t, response.Config)
		assert.Equal(t, []string{".png", "image/*"}, response.Config.AllowedFileTypes)
	})

	t.Run("Error_BadFileType", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		request := dto.CreateBucketRequest{
			Name: "images",
			Config: &dto.BucketConfigRequest{
				AllowedFileTypes: []string{"not a type"},
			},
		}

		c, w := createTestContext(http.MethodPost, "/v1/buckets", userID, request)
		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBucketHandler_GetHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	userID := uuid.Must(uuid.NewV7())
	bucketID := uuid.Must(uuid.NewV7())

	mockUseCase.On("Get", mock.Anything, bucketID, userID).
		Return(&bucketsDomain.Bucket{ID: bucketID, Name: "reports", UserID: userID}, nil).
		Once()

	c, w := createTestContext(http.MethodGet, "/v1/buckets/"+bucketID.String(), userID, nil)
	c.Params = gin.Params{{Key: "bucket_id", Value: bucketID.String()}}
	handler.GetHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBucketHandler_ListHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	userID := uuid.Must(uuid.NewV7())
	buckets := []*bucketsDomain.Bucket{
		{ID: uuid.Must(uuid.NewV7()), Name: "a", UserID: userID},
		{ID: uuid.Must(uuid.NewV7()), Name: "b", UserID: userID},
	}

	mockUseCase.On("List", mock.Anything, userID, 50, 0).Return(buckets, nil).Once()

	c, w := createTestContext(http.MethodGet, "/v1/buckets", userID, nil)
	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListBucketsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Data, 2)
}

func TestBucketHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		bucketID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Delete", mock.Anything, bucketID, userID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/buckets/"+bucketID.String(), userID, nil)
		c.Params = gin.Params{{Key: "bucket_id", Value: bucketID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_BucketNotEmpty", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		userID := uuid.Must(uuid.NewV7())
		bucketID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Delete", mock.Anything, bucketID, userID).
			Return(bucketsDomain.ErrBucketNotEmpty).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/buckets/"+bucketID.String(), userID, nil)
		c.Params = gin.Params{{Key: "bucket_id", Value: bucketID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_NoIdentity", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		bucketID := uuid.Must(uuid.NewV7())

		c, w := createTestContext(http.MethodDelete, "/v1/buckets/"+bucketID.String(), uuid.Nil, nil)
		c.Params = gin.Params{{Key: "bucket_id", Value: bucketID.String()}}
		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
