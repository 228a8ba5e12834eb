// Package http provides HTTP handlers for bucket management operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/filebucket/internal/buckets/http/dto"
	bucketsUseCase "github.com/allisson/filebucket/internal/buckets/usecase"
	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/httputil"
	usersHTTP "github.com/allisson/filebucket/internal/users/http"
	customValidation "github.com/allisson/filebucket/internal/validation"
)

// BucketHandler handles HTTP requests for bucket management operations.
type BucketHandler struct {
	bucketUseCase bucketsUseCase.BucketUseCase
	logger        *slog.Logger
}

// NewBucketHandler creates a new bucket handler with required dependencies.
func NewBucketHandler(bucketUseCase bucketsUseCase.BucketUseCase, logger *slog.Logger) *BucketHandler {
	return &BucketHandler{
		bucketUseCase: bucketUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new bucket with an optional upload policy.
// POST /v1/buckets
// Returns 201 Created with the bucket.
func (h *BucketHandler) CreateHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateBucketRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	bucket, err := h.bucketUseCase.Create(c.Request.Context(), userID, req.Name, req.Config.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapBucketToResponse(bucket))
}

// GetHandler retrieves a bucket by id.
// GET /v1/buckets/:bucket_id
// Returns 200 OK with the bucket.
func (h *BucketHandler) GetHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("bucket_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid bucket id"), h.logger)
		return
	}

	bucket, err := h.bucketUseCase.Get(c.Request.Context(), id, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBucketToResponse(bucket))
}

// ListHandler retrieves the caller's buckets with pagination support.
// GET /v1/buckets?offset=0&limit=50
// Returns 200 OK with a paginated bucket list.
func (h *BucketHandler) ListHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	buckets, err := h.bucketUseCase.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBucketsToListResponse(buckets))
}

// DeleteHandler removes an empty bucket.
// DELETE /v1/buckets/:bucket_id
// Returns 204 No Content, or 409 Conflict while the bucket still holds assets.
func (h *BucketHandler) DeleteHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("bucket_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid bucket id"), h.logger)
		return
	}

	if err := h.bucketUseCase.Delete(c.Request.Context(), id, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
