// Package api serves the proximity resolver over HTTP.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"campusradar/config"
	"campusradar/internal/delivery"
	apimiddleware "campusradar/internal/delivery/api/middleware"
	"campusradar/internal/delivery/api/router"
	"campusradar/internal/delivery/api/validator"
	"campusradar/internal/delivery/middleware"
	"campusradar/internal/domain/lifecycle"
	"campusradar/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// Server is the HTTP front of the proximity resolver.
type Server struct {
	hostPort    string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo instance and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv, err := newServer(params)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newServer(params ServerParams) (*Server, error) {
	if params.Cfg == nil {
		return nil, errors.New("api server requires configuration")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover must run first so panics in later middleware are caught
	e.Use(echomiddleware.Recover())
	// Request ID before logging so every log line carries it
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return &Server{
		hostPort:    net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}, nil
}

// Handler exposes the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve blocks until the server is shut down.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting proximity API server", slog.String("host_port", s.hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.idleTimeout,
	}
	if err := s.echo.StartH2CServer(s.hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down proximity API server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
