package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nauteik/soa-project-sub001/config"
	"github.com/nauteik/soa-project-sub001/internal/delivery"
	sharedmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/web"
	webmiddleware "github.com/nauteik/soa-project-sub001/internal/delivery/web/middleware"
	"github.com/nauteik/soa-project-sub001/internal/delivery/web/router/handler"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/infra/api"
	"github.com/nauteik/soa-project-sub001/internal/infra/auth"
	logs "github.com/nauteik/soa-project-sub001/internal/infra/log"
	"github.com/nauteik/soa-project-sub001/internal/infra/qrcode"
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
		config.NewStorefront,
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
			api.NewCartAPI,
			api.NewOrderAPI,
			api.NewAddressAPI,
			auth.NewTokenInspector,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.PaymentQR == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.PaymentQR.Size, cfg.PaymentQR.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionService,
			impl.NewCartService,
			impl.NewCatalogService,
			newCheckoutService,
			impl.NewAddressService,
			impl.NewOrderService,
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

// newCheckoutService binds the checkout hand-off lifetime from config.
func newCheckoutService(
	carts usecase.CartUsecase,
	orders service.OrderAPI,
	addresses service.AddressAPI,
	store service.SessionStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return impl.NewCheckoutService(carts, orders, addresses, store, cfg.Session.CheckoutTTL, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			sharedmiddleware.NewSessionMiddleware,
			webmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewAuthHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
