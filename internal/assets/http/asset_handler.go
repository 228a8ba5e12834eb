// Package http provides HTTP handlers for asset upload, download, and
// management within a bucket.
package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	assetsDomain "github.com/allisson/filebucket/internal/assets/domain"
	"github.com/allisson/filebucket/internal/assets/http/dto"
	assetsUseCase "github.com/allisson/filebucket/internal/assets/usecase"
	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/httputil"
	usersHTTP "github.com/allisson/filebucket/internal/users/http"
	customValidation "github.com/allisson/filebucket/internal/validation"
)

// AssetHandler handles HTTP requests for asset operations.
type AssetHandler struct {
	assetUseCase assetsUseCase.AssetUseCase
	logger       *slog.Logger
}

// NewAssetHandler creates a new asset handler with required dependencies.
func NewAssetHandler(assetUseCase assetsUseCase.AssetUseCase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
		logger:       logger,
	}
}

// UploadHandler stores a file in a bucket.
// POST /v1/buckets/:bucket_id/assets - multipart form with a "file" field and
// optional repeated "keys" fields for access-control tag keys.
// Returns 201 Created with the asset metadata.
func (h *AssetHandler) UploadHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	bucketID, err := uuid.Parse(c.Param("bucket_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid bucket id"), h.logger)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "missing file field"), h.logger)
		return
	}

	form := dto.UploadAssetForm{Keys: c.PostFormArray("keys")}
	if err := form.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "unreadable file field"), h.logger)
		return
	}
	defer file.Close()

	asset, err := h.assetUseCase.Create(c.Request.Context(), assetsUseCase.CreateAssetInput{
		UserID:   userID,
		BucketID: bucketID,
		Name:     fileHeader.Filename,
		Size:     fileHeader.Size,
		Keys:     form.Keys,
		Content:  file,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAssetToResponse(asset))
}

// GetHandler retrieves an asset's metadata.
// GET /v1/buckets/:bucket_id/assets/:asset_id
// Returns 200 OK with the asset metadata.
func (h *AssetHandler) GetHandler(c *gin.Context) {
	userID, bucketID, assetID, ok := h.parseScope(c)
	if !ok {
		return
	}

	asset, err := h.assetUseCase.Get(c.Request.Context(), userID, bucketID, assetID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetToResponse(asset))
}

// ListHandler retrieves a bucket's assets with pagination support.
// GET /v1/buckets/:bucket_id/assets?offset=0&limit=50
// Returns 200 OK with a paginated asset list.
func (h *AssetHandler) ListHandler(c *gin.Context) {
	userID, ok := usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	bucketID, err := uuid.Parse(c.Param("bucket_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid bucket id"), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	assets, err := h.assetUseCase.List(c.Request.Context(), userID, bucketID, limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetsToListResponse(assets))
}

// DownloadHandler streams an asset's content to the owner.
// GET /v1/buckets/:bucket_id/assets/:asset_id/download
// Returns 200 OK with the file bytes.
func (h *AssetHandler) DownloadHandler(c *gin.Context) {
	userID, bucketID, assetID, ok := h.parseScope(c)
	if !ok {
		return
	}

	asset, reader, err := h.assetUseCase.Download(c.Request.Context(), userID, bucketID, assetID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer reader.Close()

	ServeAsset(c, asset, reader)
}

// DeleteHandler removes an asset's file bytes and metadata.
// DELETE /v1/buckets/:bucket_id/assets/:asset_id
// Returns 204 No Content.
func (h *AssetHandler) DeleteHandler(c *gin.Context) {
	userID, bucketID, assetID, ok := h.parseScope(c)
	if !ok {
		return
	}

	if err := h.assetUseCase.Delete(c.Request.Context(), userID, bucketID, assetID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseScope extracts the user, bucket, and asset ids shared by the
// single-asset handlers. On failure it writes the error response and
// returns ok=false.
func (h *AssetHandler) parseScope(c *gin.Context) (userID, bucketID, assetID uuid.UUID, ok bool) {
	userID, ok = usersHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	bucketID, err := uuid.Parse(c.Param("bucket_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid bucket id"), h.logger)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	assetID, err = uuid.Parse(c.Param("asset_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid asset id"), h.logger)
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	return userID, bucketID, assetID, true
}

// ServeAsset streams asset content with download headers. Shared with the
// credential handlers, which serve the same bytes through token-gated routes.
func ServeAsset(c *gin.Context, asset *assetsDomain.Asset, reader io.Reader) {
	contentType := mime.TypeByExtension(asset.Extension())
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	extraHeaders := map[string]string{
		"Content-Disposition": `attachment; filename="` + asset.Name + `"`,
	}

	c.DataFromReader(http.StatusOK, asset.Size, contentType, reader, extraHeaders)
}
