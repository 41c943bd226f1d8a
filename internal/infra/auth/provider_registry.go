package auth

import (
	"log/slog"
	"sort"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"go.uber.org/fx"
)

// RegistryParams collects every adapter constructed by Fx.
type RegistryParams struct {
	fx.In

	Providers []service.OAuthProvider `group:"oauth_providers"`
	Logger    *slog.Logger
}

type providerRegistry struct {
	providers map[entity.ProviderType]service.OAuthProvider
}

// NewProviderRegistry indexes the enabled adapters. Disabled providers arrive as nil and are skipped.
func NewProviderRegistry(params RegistryParams) service.ProviderRegistry {
	registry := &providerRegistry{providers: make(map[entity.ProviderType]service.OAuthProvider)}
	for _, p := range params.Providers {
		if p == nil {
			continue
		}
		registry.providers[p.Type()] = p
	}

	if params.Logger != nil {
		names := make([]string, 0, len(registry.providers))
		for _, p := range registry.Providers() {
			names = append(names, p.String())
		}
		params.Logger.Info("OAuth providers registered", slog.Any("providers", names))
	}

	return registry
}

// Provider returns the adapter for an enabled provider.
func (r *providerRegistry) Provider(provider entity.ProviderType) (service.OAuthProvider, error) {
	p, ok := r.providers[provider]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WithDetails(provider.String())
	}

	return p, nil
}

// Providers lists enabled providers in a stable order.
func (r *providerRegistry) Providers() []entity.ProviderType {
	out := make([]entity.ProviderType, 0, len(r.providers))
	for p := range r.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
