// Package admin serves the back-office app over h2c.
package admin

import (
	"context"
	"embed"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery"
	adminmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/admin/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/admin/router"
	sharedmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/render"
	"github.com/nauteik/soa-project-sub001/internal/domain/lifecycle"
	"github.com/nauteik/soa-project-sub001/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

//go:embed views/*.html
var viewsFS embed.FS

type adminServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the back-office server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	RouterParams      router.RouterParams
	SessionMiddleware *sharedmiddleware.SessionMiddleware
	ErrorMiddleware   *adminmiddleware.ErrorMiddleware
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

	echoServer.Use(echomiddleware.Recover())

	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	echoServer.Use(params.SessionMiddleware.Process)

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &adminServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *adminServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting back-office server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *adminServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down back-office server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
