package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-donate/internal/adapter"
	"github.com/feral-file/ff-donate/internal/api/middleware"
	"github.com/feral-file/ff-donate/internal/api/rest"
	"github.com/feral-file/ff-donate/internal/api/shared/executor"
	"github.com/feral-file/ff-donate/internal/logger"
	"github.com/feral-file/ff-donate/internal/messaging"
	"github.com/feral-file/ff-donate/internal/store"
)

const RATE_LIMIT_CLEANUP_INTERVAL = time.Minute

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Storage      string
	CORS         middleware.CORSConfig
	RateLimit    middleware.RateLimitConfig
}

// Server wraps the HTTP server
type Server struct {
	config      Config
	router      *gin.Engine
	rateLimiter *middleware.RateLimiter
	httpServer  *http.Server
	cleanupCtx  context.Context
	stopCleanup context.CancelFunc
}

// New creates a new API server serving the given store
func New(cfg Config, store store.Store, dispatcher messaging.Dispatcher, clock adapter.Clock) *Server {
	// Set Gin mode based on debug flag
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Create shared executor
	exec := executor.NewExecutor(store, dispatcher, clock)

	// Create REST handler and routes
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	restHandler := rest.NewHandler(cfg.Debug, cfg.Storage, exec)
	rest.SetupRoutes(router, restHandler, rateLimiter.Handler())

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return &Server{
		config:      cfg,
		router:      router,
		rateLimiter: rateLimiter,
		cleanupCtx:  cleanupCtx,
		stopCleanup: stopCleanup,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it is shut down
func (s *Server) Start() error {
	s.rateLimiter.StartCleanup(s.cleanupCtx, RATE_LIMIT_CLEANUP_INTERVAL)

	logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("storage", s.config.Storage),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	s.stopCleanup()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
