// Package http provides the local HTTP API for clipsage.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/DylansGit/ClipSage/internal/domain/entity"
	"github.com/DylansGit/ClipSage/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// ClipHistory is the history surface the API serves.
type ClipHistory interface {
	Search(ctx context.Context, query string) []*entity.ClipItem
	ClearAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// Gatherer serves /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// Server provides HTTP endpoints for clipsage.
type Server struct {
	echo    *echo.Echo
	history ClipHistory
	logger  zerolog.Logger
	config  *Config
}

// NewServer creates a new HTTP server. The logger is taken from ctx.
func NewServer(ctx context.Context, history ClipHistory, cfg *Config) (*Server, error) {
	if history == nil {
		return nil, fmt.Errorf("history cannot be nil")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "127.0.0.1",
			Port: 7878,
		}
	}

	logger := logging.FromContext(logging.WithComponent(ctx, "http")).With().Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Debug().
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("http request")

			return nil
		}
	})

	s := &Server{
		echo:    e,
		history: history,
		logger:  logger,
		config:  cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	gatherer := s.config.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := s.echo.Group("/api/v1")
	v1.GET("/clips", s.handleListClips)
	v1.DELETE("/clips", s.handleClearClips)
	v1.GET("/clips/count", s.handleCountClips)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// CountResponse is the response body for GET /api/v1/clips/count.
type CountResponse struct {
	Count int64 `json:"count"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleListClips returns clips newest first, filtered by ?q= and capped by ?limit=.
func (s *Server) handleListClips(c echo.Context) error {
	ctx := s.requestContext(c)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	items := s.history.Search(ctx, c.QueryParam("q"))
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return c.JSON(http.StatusOK, items)
}

func (s *Server) handleClearClips(c echo.Context) error {
	ctx := s.requestContext(c)

	if err := s.history.ClearAll(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear history")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleCountClips(c echo.Context) error {
	ctx := s.requestContext(c)

	n, err := s.history.Count(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("count clips failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to count clips")
	}
	return c.JSON(http.StatusOK, CountResponse{Count: n})
}

// requestContext attaches the server logger to the request context.
func (s *Server) requestContext(c echo.Context) context.Context {
	return logging.WithContext(c.Request().Context(), s.logger)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.Addr()).Msg("starting http server")
	return s.echo.Start(s.Addr())
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down http server")
	return s.echo.Shutdown(ctx)
}
