package main

import (
	"context"
	"log/slog"
	"os"

	"ngopi/config"
	"ngopi/internal/delivery"
	"ngopi/internal/delivery/http"
	"ngopi/internal/delivery/http/middleware"
	"ngopi/internal/delivery/http/router/handler"
	"ngopi/internal/domain/service"
	"ngopi/internal/infra/auth"
	"ngopi/internal/infra/connectivity"
	logs "ngopi/internal/infra/log"
	"ngopi/internal/infra/persistence/sheets"
	"ngopi/internal/infra/photo"
	"ngopi/internal/infra/pubsub"
	"ngopi/internal/infra/qrcode"
	"ngopi/internal/infra/ratelimit"
	"ngopi/internal/usecase"
	"ngopi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Cache      *impl.ListingCache
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
		config.New,
		logs.New,
		context.Background,
		newRateLimiter,
		newConnectivityProbe,
		sheets.New,
	)
}

// newRateLimiter creates the shared admission window for the Sheets store
func newRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
}

// newConnectivityProbe creates the reachability probe the retry loop consults
func newConnectivityProbe(cfg *config.Config) service.ConnectivityProbe {
	return connectivity.NewHTTPProbe(cfg.Connectivity)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sheets.NewCafeRepository,
			sheets.NewRatingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptKeyHasher,
			auth.NewSessionTokenService,
			pubsub.NewEventPublisher,
			photo.NewBlobStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "medium", "https://ngopi.app")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newStorePacer,
			impl.NewListingCache,
			impl.NewCafeService,
			impl.NewRatingService,
			impl.NewSessionService,
			impl.NewPhotoService,
		),
	)
}

// newStorePacer exposes the limiter to the cache's background refresher
func newStorePacer(limiter *ratelimit.Limiter) usecase.StorePacer {
	return limiter
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewCafeHandler,
			handler.NewRatingHandler,
			handler.NewSessionHandler,
			handler.NewPhotoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	// The cache sweeper refreshes stale listings and evicts unused ones
	go params.Cache.Run(ctx)

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
