// Package http provides the HTTP server, router setup, and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	assetsHTTP "github.com/allisson/filebucket/internal/assets/http"
	bucketsHTTP "github.com/allisson/filebucket/internal/buckets/http"
	credentialsHTTP "github.com/allisson/filebucket/internal/credentials/http"
	"github.com/allisson/filebucket/internal/metrics"
	secretsHTTP "github.com/allisson/filebucket/internal/secrets/http"
	usersHTTP "github.com/allisson/filebucket/internal/users/http"
)

// Server represents the main HTTP server.
type Server struct {
	db     *sql.DB
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and middleware configuration for route
// registration.
type RouterConfig struct {
	UserHandler       *usersHTTP.UserHandler
	SecretHandler     *secretsHTTP.SecretHandler
	BucketHandler     *bucketsHTTP.BucketHandler
	AssetHandler      *assetsHTTP.AssetHandler
	CredentialHandler *credentialsHTTP.CredentialHandler

	// IdentityMiddleware authenticates the upstream user id header; it guards
	// every owner-facing route.
	IdentityMiddleware gin.HandlerFunc

	// RateLimitMiddleware throttles credential issuance per user. Optional.
	RateLimitMiddleware gin.HandlerFunc

	// MeterProvider enables per-request HTTP metrics when set.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string

	CORSEnabled      bool
	CORSAllowOrigins string
}

// SetupRouter builds the gin router with all middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public routes: registration and token-gated file serving. The serving
	// routes carry their own authority in the token, so no identity header
	// is required.
	v1.POST("/users", cfg.UserHandler.RegisterHandler)
	v1.GET("/files/:asset_id", cfg.CredentialHandler.ServeAssetHandler)
	v1.GET("/signed-files", cfg.CredentialHandler.ServeSignedURLHandler)

	// Owner-facing routes, behind the identity middleware.
	authenticated := v1.Group("")
	authenticated.Use(cfg.IdentityMiddleware)

	authenticated.GET("/users/me", cfg.UserHandler.MeHandler)

	authenticated.POST("/secrets", cfg.SecretHandler.CreateHandler)
	authenticated.GET("/secrets", cfg.SecretHandler.ListHandler)
	authenticated.GET("/secrets/:id", cfg.SecretHandler.GetHandler)
	authenticated.DELETE("/secrets/:id", cfg.SecretHandler.DeleteHandler)
	authenticated.POST("/secrets/delete-expired", cfg.SecretHandler.DeleteExpiredHandler)

	authenticated.POST("/buckets", cfg.BucketHandler.CreateHandler)
	authenticated.GET("/buckets", cfg.BucketHandler.ListHandler)
	authenticated.GET("/buckets/:bucket_id", cfg.BucketHandler.GetHandler)
	authenticated.DELETE("/buckets/:bucket_id", cfg.BucketHandler.DeleteHandler)

	authenticated.POST("/buckets/:bucket_id/assets", cfg.AssetHandler.UploadHandler)
	authenticated.GET("/buckets/:bucket_id/assets", cfg.AssetHandler.ListHandler)
	authenticated.GET("/buckets/:bucket_id/assets/:asset_id", cfg.AssetHandler.GetHandler)
	authenticated.GET("/buckets/:bucket_id/assets/:asset_id/download", cfg.AssetHandler.DownloadHandler)
	authenticated.DELETE("/buckets/:bucket_id/assets/:asset_id", cfg.AssetHandler.DeleteHandler)

	// Credential issuance is the abuse-prone surface; rate limit it per user.
	credentials := authenticated.Group("/credentials")
	if cfg.RateLimitMiddleware != nil {
		credentials.Use(cfg.RateLimitMiddleware)
	}
	credentials.POST("/read-tokens", cfg.CredentialHandler.IssueReadTokenHandler)
	credentials.POST("/signed-urls", cfg.CredentialHandler.IssueSignedURLHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
// Returns nil until SetupRouter has been called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server. SetupRouter (or an explicit router) must
// have been configured first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
