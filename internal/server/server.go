// Package server assembles the console HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"lookup-console/internal/config"
	"lookup-console/internal/console"
	"lookup-console/internal/database"
	"lookup-console/internal/handlers"
	"lookup-console/internal/middleware"
	"lookup-console/internal/repositories"
	"lookup-console/internal/services"
	"lookup-console/internal/views"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	bodyLimit          = "64K"
	auditPurgeInterval = time.Hour
)

// Metrics is the registry the server registers on and exposes at /metrics
type Metrics interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Server is the console HTTP server and its background loops
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	echo     *echo.Echo
	registry *console.Registry
	audit    services.AuditServiceInterface
	general  *middleware.RateLimiter
	login    *middleware.RateLimiter
}

// New wires every component of the console onto a fresh echo instance
func New(cfg *config.Config, db *database.DB, logger *slog.Logger, metrics Metrics) (*Server, error) {
	renderer, err := views.NewRenderer(cfg.Console.PhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	recorder := services.NewPrometheusMetrics(metrics)
	events := services.NewConsoleLogger(logger)
	tokens := services.NewTokenService(&cfg.Console)
	backend := services.NewBackendClient(&cfg.Backend, logger, recorder)
	audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB))

	registry := console.NewRegistry(tokens, events, recorder, cfg.Console.IdleTTL)
	commands := console.NewCommands(backend, renderer, audit, recorder, events, logger)
	consoleHandler := handlers.NewConsoleHandler(registry, commands, logger)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		audit:    audit,
		general:  middleware.NewRateLimiter(float64(cfg.Security.RateLimitPerSecond), cfg.Security.RateLimitBurst),
		login:    middleware.NewRateLimiter(cfg.Security.LoginRateLimitPerSecond, cfg.Security.LoginRateLimitBurst),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics, logger)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(s.general.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})))
	e.StaticFS("/static", views.Static())

	consoleHandler.RegisterRoutes(e, middleware.ResolveConsole(registry), s.login.Middleware())

	s.echo = e
	return s, nil
}

// Echo exposes the router, mainly for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	go s.registry.StartJanitor(ctx)
	go s.general.StartCleanup(ctx)
	go s.login.StartCleanup(ctx)
	go s.startAuditPurge(ctx)

	srvErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Address())
		if err := s.echo.Start(s.cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// startAuditPurge deletes audit entries past the retention period every hour
func (s *Server) startAuditPurge(ctx context.Context) {
	if s.cfg.Database.AuditRetention <= 0 {
		return
	}

	ticker := time.NewTicker(auditPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeAudit()
		}
	}
}

func (s *Server) purgeAudit() {
	deleted, err := s.audit.Purge(s.cfg.Database.AuditRetention)
	if err != nil {
		s.logger.Error("audit purge failed", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Info("audit entries purged", "deleted", deleted, "retention", s.cfg.Database.AuditRetention)
	}
}
