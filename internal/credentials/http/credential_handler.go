// Package http provides HTTP handlers for credential issuance and for
// serving assets gated by read tokens or signed URLs.
package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	assetsHTTP "github.com/allisson/filebucket/internal/assets/http"
	"github.com/allisson/filebucket/internal/credentials/http/dto"
	credentialsUseCase "github.com/allisson/filebucket/internal/credentials/usecase"
	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/httputil"
	customValidation "github.com/allisson/filebucket/internal/validation"
)

// SignedFilePath is the route serving signed URL tokens; issuance responses
// embed it in the returned URL.
const SignedFilePath = "/v1/signed-files"

// CredentialHandler handles HTTP requests for credential issuance and
// token-gated asset serving.
type CredentialHandler struct {
	credentialUseCase credentialsUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	credentialUseCase credentialsUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: credentialUseCase,
		logger:            logger,
	}
}

// IssueReadTokenHandler issues a bucket/tag-scoped read token.
// POST /v1/credentials/read-tokens
// The caller authenticates with their raw secret value in the body; the
// identity middleware additionally scopes the request to a known user.
// Returns 201 Created with the token.
func (h *CredentialHandler) IssueReadTokenHandler(c *gin.Context) {
	var req dto.IssueReadTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	bucketID := uuid.MustParse(req.BucketID)

	token, err := h.credentialUseCase.IssueReadToken(c.Request.Context(), req.Secret, bucketID, req.Keys)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ReadTokenResponse{Token: token})
}

// IssueSignedURLHandler issues a single-asset signed URL token.
// POST /v1/credentials/signed-urls
// Returns 201 Created with the token and a relative URL embedding it.
func (h *CredentialHandler) IssueSignedURLHandler(c *gin.Context) {
	var req dto.IssueSignedURLRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	bucketID := uuid.MustParse(req.BucketID)
	assetID := uuid.MustParse(req.AssetID)
	ttl := time.Duration(req.TTLSeconds) * time.Second

	token, err := h.credentialUseCase.IssueSignedURL(c.Request.Context(), req.Secret, bucketID, assetID, ttl)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.SignedURLResponse{
		Token: token,
		URL:   SignedFilePath + "?token=" + url.QueryEscape(token),
	})
}

// ServeAssetHandler streams an asset's content, gated by its tag keys.
// GET /v1/files/:asset_id?token=...
// Unrestricted assets are served without a token. Restricted assets require
// a read token, from the "token" query parameter or an Authorization bearer
// header, whose tag keys overlap the asset's.
func (h *CredentialHandler) ServeAssetHandler(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("asset_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid asset id"), h.logger)
		return
	}

	token := extractToken(c)

	asset, reader, err := h.credentialUseCase.OpenAsset(c.Request.Context(), assetID, token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer reader.Close()

	assetsHTTP.ServeAsset(c, asset, reader)
}

// ServeSignedURLHandler streams the asset a signed URL token grants access to.
// GET /v1/signed-files?token=...
func (h *CredentialHandler) ServeSignedURLHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "missing token"), h.logger)
		return
	}

	asset, reader, err := h.credentialUseCase.OpenSignedURL(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer reader.Close()

	assetsHTTP.ServeAsset(c, asset, reader)
}

// extractToken reads a read token from the "token" query parameter, falling
// back to an Authorization bearer header. Returns "" when neither is present.
func extractToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}

	const bearerPrefix = "bearer "
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len(bearerPrefix) &&
		strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return authHeader[len(bearerPrefix):]
	}

	return ""
}
