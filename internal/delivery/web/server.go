// Package web serves the customer storefront.
package web

import (
	"context"
	"embed"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery"
	sharedmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/render"
	webmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/web/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/web/router"
	"github.com/nauteik/soa-project-sub001/internal/domain/lifecycle"
	"github.com/nauteik/soa-project-sub001/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

//go:embed views/*.html
var viewsFS embed.FS

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the storefront server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	RouterParams      router.RouterParams
	SessionMiddleware *sharedmiddleware.SessionMiddleware
	ErrorMiddleware   *webmiddleware.ErrorMiddleware
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	renderer, err := render.New(viewsFS, "views/*.html")
	if err != nil {
		return nil, err
	}
	echoServer.Renderer = renderer

	// Middleware order matters: recover first, then request id so the
	// loggers downstream carry it.
	echoServer.Use(echomiddleware.Recover())

	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	echoServer.Use(params.SessionMiddleware.Process)

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting storefront server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down storefront server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
