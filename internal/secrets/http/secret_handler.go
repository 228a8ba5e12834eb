// Package http provides HTTP handlers for secret management operations.
// Secrets are encrypted at rest under the master key and act as credential
// roots for read tokens and signed URLs.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/httputil"
	"github.com/allisson/filebucket/internal/secrets/http/dto"
	secretsUseCase "github.com/allisson/filebucket/internal/secrets/usecase"
	usersHTTP "github.com/allisson/filebucket/internal/users/http"
	customValidation "github.com/allisson/filebucket/internal/validation"
)

// SecretHandler handles HTTP requests for secret management operations.
type SecretHandler struct {
	secretUseCase secretsUseCase.SecretUseCase
	logger        *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(secretUseCase secretsUseCase.SecretUseCase, logger *slog.Logger) *SecretHandler {
	return &SecretHandler{
		secretUseCase: secretUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new secret from a caller-chosen raw value.
// POST /v1/secrets
// Returns 201 Created with secret metadata (the raw value is never echoed back).
func (h *SecretHandler) CreateHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateSecretRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	secret, err := h.secretUseCase.Create(c.Request.Context(), userID, req.Value, req.ExpiresAt, req.ValidationURI)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSecretToResponse(secret))
}

// GetHandler retrieves a secret's metadata by id.
// GET /v1/secrets/:id
// Returns 200 OK with secret metadata.
func (h *SecretHandler) GetHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid secret id"), h.logger)
		return
	}

	secret, err := h.secretUseCase.Get(c.Request.Context(), id, userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretToResponse(secret))
}

// ListHandler retrieves the caller's secrets with pagination support.
// GET /v1/secrets?offset=0&limit=50
// Returns 200 OK with a paginated secret list.
func (h *SecretHandler) ListHandler(c *gin.Context) {
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

	secrets, err := h.secretUseCase.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretsToListResponse(secrets))
}

// DeleteHandler removes a secret, retroactively voiding every credential it issued.
// DELETE /v1/secrets/:id
// Returns 204 No Content.
func (h *SecretHandler) DeleteHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid secret id"), h.logger)
		return
	}

	if err := h.secretUseCase.Delete(c.Request.Context(), id, userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// DeleteExpiredHandler removes the caller's past-expiry secrets.
// POST /v1/secrets/delete-expired
// Returns 200 OK with the number of secrets removed.
func (h *SecretHandler) DeleteExpiredHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	deleted, err := h.secretUseCase.DeleteExpiredForUser(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteExpiredResponse{Deleted: deleted})
}
