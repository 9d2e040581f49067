package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery"
	"github.com/nauteik/soa-project-sub001/internal/delivery/admin"
	adminmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/admin/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/admin/router/handler"
	sharedmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/infra/api"
	"github.com/nauteik/soa-project-sub001/internal/infra/auth"
	logs "github.com/nauteik/soa-project-sub001/internal/infra/log"
	"github.com/nauteik/soa-project-sub001/internal/infra/storage"
	"github.com/nauteik/soa-project-sub001/internal/usecase"
	"github.com/nauteik/soa-project-sub001/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.NewAdmin,
		logs.New,
		context.Background,
		api.NewClient,
		storage.NewStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthAPI,
			api.NewProductAPI,
			api.NewCategoryAPI,
			api.NewBrandAPI,
			api.NewOrderAPI,
			api.NewUserAdminAPI,
			api.NewUploadAPI,
			auth.NewTokenInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionService,
			impl.NewCatalogService,
			impl.NewAdminService,
		),
	)
}

// newSessionService binds the session lifetime from config.
func newSessionService(
	authAPI service.AuthAPI,
	store service.SessionStore,
	tokens service.TokenInspector,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return impl.NewSessionService(authAPI, store, tokens, cfg.Session.TTL, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			sharedmiddleware.NewSessionMiddleware,
			adminmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewBrandHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				admin.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
