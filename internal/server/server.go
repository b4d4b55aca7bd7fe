package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Cyclone1070/fileview/internal/adapter"
	"github.com/Cyclone1070/fileview/internal/config"
	"github.com/Cyclone1070/fileview/internal/metrics"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Server wires the adapter operations onto echo routes.
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	service *adapter.Service
	ops     map[string]adapter.Operation
	store   sessions.Store
	logger  *zap.Logger
}

// New creates a Server. The session store is only created when login is configured.
func New(cfg *config.Config, svc *adapter.Service, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		panic("config is required")
	}
	if svc == nil {
		panic("service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		echo:    echo.New(),
		config:  cfg,
		service: svc,
		ops:     svc.Operations(),
		logger:  logger,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	if cfg.Auth.Enabled() {
		store, err := newSessionStore(cfg.Auth.SessionSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to create session store: %w", err)
		}
		s.store = store
		if cfg.Auth.SessionSecret == "" {
			logger.Warn("no session secret configured, sessions end on restart")
		}
	}

	s.configureMiddleware()
	s.initRoutes()
	return s, nil
}

func (s *Server) configureMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(s.requestLogger())
}

func (s *Server) initRoutes() {
	s.echo.GET("/", s.handleIndex)
	s.echo.POST("/login", s.handleLogin)
	s.echo.POST("/logout", s.handleLogout)
	s.echo.GET("/healthz", s.handleHealth)

	if s.config.Metrics.Enabled {
		s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	}

	api := s.echo.Group("/api", s.requireSession)
	api.GET("/list", s.handleOperation(adapter.OpList))
	api.GET("/more", s.handleOperation(adapter.OpMore))
	api.GET("/search", s.handleOperation(adapter.OpSearch))
	api.POST("/append", s.handleOperation(adapter.OpAppend))
	api.GET("/exists", s.handleOperation(adapter.OpExists))
	api.POST("/upload", s.handleUpload)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on server.listen until ctx is cancelled, then shuts down and
// waits up to server.shutdown_timeout for in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("listen", s.config.Server.Listen))
		errCh <- s.echo.Start(s.config.Server.Listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down http server")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
