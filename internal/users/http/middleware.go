package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/allisson/filebucket/internal/errors"
	"github.com/allisson/filebucket/internal/httputil"
	usersUseCase "github.com/allisson/filebucket/internal/users/usecase"
)

// UserIDHeader carries the upstream-authenticated user id. Sign-in happens
// outside this service; a trusted proxy injects this header after
// authenticating the caller.
const UserIDHeader = "X-User-Id"

// IdentityMiddleware validates the upstream user id header and stores the
// user id in the request context.
//
// The middleware:
// 1. Reads the X-User-Id header
// 2. Parses it as a UUID
// 3. Confirms the user exists via userUseCase.Get
// 4. Stores the user id in the request context for handlers via GetUserID()
//
// Error handling:
//   - Missing header → 401 Unauthorized
//   - Malformed UUID → 401 Unauthorized
//   - Unknown user → 401 Unauthorized
func IdentityMiddleware(userUseCase usersUseCase.UserUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			logger.Debug("identity check failed: missing user id header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil || userID == uuid.Nil {
			logger.Debug("identity check failed: malformed user id header",
				slog.String("header", header))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		user, err := userUseCase.Get(c.Request.Context(), userID)
		if err != nil {
			logger.Debug("identity check failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			// An unknown user id is an authentication failure, not a lookup miss.
			if apperrors.Is(err, apperrors.ErrNotFound) {
				err = apperrors.ErrUnauthorized
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
