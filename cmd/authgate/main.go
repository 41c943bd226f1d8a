package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"authgate/config"
	"authgate/internal/delivery"
	deliveryhttp "authgate/internal/delivery/http"
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/router/handler"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/infra/auth"
	"authgate/internal/infra/auth/apple"
	"authgate/internal/infra/auth/kakao"
	"authgate/internal/infra/auth/naver"
	"authgate/internal/infra/backend"
	logs "authgate/internal/infra/log"
	"authgate/internal/infra/persistence/memory"
	"authgate/internal/infra/persistence/postgres"
	"authgate/internal/infra/persistence/sqlite"
	"authgate/internal/infra/pubsub"
	"authgate/internal/usecase/impl"
	"authgate/internal/util"

	"go.uber.org/fx"
)

const providerHTTPTimeout = 10 * time.Second

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			memory.RegisterJanitor,
			logCallbackLimits,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenRepository,
			memory.NewClientStateRepository,
			func(store *memory.ClientStateRepository) repository.ClientStateRepository {
				return store
			},
		),
	)
}

type tokenRepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// newTokenRepository selects the durable token store configured under storage.driver.
func newTokenRepository(params tokenRepositoryParams) (repository.TokenRepository, error) {
	driver := config.StorageDriverMemory
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}
	params.Logger.Info("Using token storage", slog.String("driver", driver))

	switch driver {
	case config.StorageDriverMemory:
		return memory.NewTokenRepository(), nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTokenRepository(db), nil

	case config.StorageDriverSQLite:
		store, err := sqlite.Open(params.Config.Storage.SQLitePath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open sqlite token store")
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewClient,
			backend.NewGateway,
			auth.NewJWTInspector,
			auth.NewProviderRegistry,
			fx.Annotate(
				newOAuthProviders,
				fx.ResultTags(`group:"oauth_providers,flatten"`),
			),
		),
	)
}

// newOAuthProviders builds the enabled provider adapters.
func newOAuthProviders(cfg *config.Config) ([]service.OAuthProvider, error) {
	if cfg.OAuth == nil {
		return nil, nil
	}

	httpClient := &http.Client{Timeout: providerHTTPTimeout}
	var providers []service.OAuthProvider

	if cfg.OAuth.Kakao.Enabled {
		providers = append(providers, kakao.NewOAuthService(cfg.OAuth.Kakao, httpClient))
	}

	if cfg.OAuth.Naver.Enabled {
		svc, err := naver.NewOAuthService(cfg.OAuth.Naver, httpClient)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Naver OAuth service")
		}
		providers = append(providers, svc)
	}

	if cfg.OAuth.Apple.Enabled {
		svc, err := apple.NewOAuthService(cfg.OAuth.Apple, httpClient)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Apple OAuth service")
		}
		providers = append(providers, svc)
	}

	return providers, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCallbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCallbackHandler,
			handler.NewRelayHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func logCallbackLimits(cfg *config.Config, logger *slog.Logger) {
	if cfg.Callback == nil {
		return
	}

	logger.Info("Callback limits",
		slog.String("marker_ttl", util.FormatDuration(cfg.Callback.MarkerTTL)),
		slog.String("state_ttl", util.FormatDuration(cfg.Callback.StateTTL)),
		slog.String("pending_ttl", util.FormatDuration(cfg.Callback.PendingTTL)),
		slog.String("sync_timeout", util.FormatDuration(cfg.Callback.SyncTimeout)),
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
