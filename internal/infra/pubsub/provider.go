// Package pubsub publishes entitlement sync requests to the purchase subsystem.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"authgate/config"
	"authgate/internal/domain/constants"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// syncWindow is how long a published sync covers the same user.
const syncWindow = time.Minute

// noopSyncer is used when Pub/Sub is not configured
type noopSyncer struct {
	logger *slog.Logger
}

func (p *noopSyncer) SyncEntitlements(_ context.Context, event *service.EntitlementSyncEvent) error {
	p.logger.Debug("Entitlement sync disabled, skipping", slog.String("user_id", event.UserID))

	return nil
}

func (p *noopSyncer) Close() error {
	return nil
}

// SyncerParams holds dependencies for EntitlementSyncer, injected by Fx
type SyncerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEntitlementSyncer picks the transport configured under pubsub and coalesces repeat syncs per user.
func NewEntitlementSyncer(params SyncerParams) (service.EntitlementSyncer, error) {
	transport, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	syncer := newCoalescingSyncer(transport, syncWindow, time.Now, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return syncer.Close()
		},
	})

	return syncer, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EntitlementSyncer, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, entitlement sync disabled")

		return &noopSyncer{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP entitlement syncer", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPSyncer(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		return NewGoogleSyncer(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEntitlementSyncer),
)
