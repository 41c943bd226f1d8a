package handler

import (
	"log/slog"
	"net/http"

	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	"authgate/internal/errors"

	"github.com/labstack/echo/v4"
)

// RelayHandler serves the same-origin token relay used by pages that run the provider
// flow in the browser. Provider secrets stay on the server; responses are plain JSON.
type RelayHandler struct {
	registry service.ProviderRegistry
	backend  service.BackendGateway
	logger   *slog.Logger
}

// NewRelayHandler is the constructor for RelayHandler, injected by Fx.
func NewRelayHandler(registry service.ProviderRegistry, backend service.BackendGateway, logger *slog.Logger) *RelayHandler {
	return &RelayHandler{registry: registry, backend: backend, logger: logger}
}

type relayCodeRequest struct {
	Code string `json:"code"`
}

// RelayTokenResponse is the provider token and normalized profile for an exchanged code.
type RelayTokenResponse struct {
	AccessToken string                 `json:"accessToken"`
	Profile     entity.ProviderProfile `json:"profile"`
}

type relayLoginRequest struct {
	AccessToken string `json:"accessToken"`
	IDToken     string `json:"idToken"`
}

// RelayLoginResponse mirrors the backend's answer to /auth/{provider}.
type RelayLoginResponse struct {
	User                   *entity.User            `json:"user,omitempty"`
	AccessToken            string                  `json:"access_token,omitempty"`
	RequiresAdditionalInfo bool                    `json:"requiresAdditionalInfo,omitempty"`
	Profile                *entity.ProviderProfile `json:"profile,omitempty"`
}

// ExchangeCode trades an authorization code for the provider token and profile.
func (h *RelayHandler) ExchangeCode(c echo.Context) error {
	var req relayCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid relay input")
	}
	if req.Code == "" {
		return domainerrors.ErrMissingCode
	}

	provider, err := h.registry.Provider(providerParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	grant, err := provider.Exchange(c.Request().Context(), req.Code)
	if err != nil {
		h.logger.Warn("Relay code exchange failed", slog.String("provider", provider.Type().String()), slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrExchangeFailed) {
			return errors.WithStack(err)
		}

		return domainerrors.ErrExchangeFailed.WithDetails(err.Error())
	}

	return c.JSON(http.StatusOK, RelayTokenResponse{AccessToken: grant.AccessToken, Profile: grant.Profile})
}

// ProviderLogin forwards a provider token to the backend and returns its answer,
// passing backend error statuses through.
func (h *RelayHandler) ProviderLogin(c echo.Context) error {
	var req relayLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid relay input")
	}
	if req.AccessToken == "" && req.IDToken == "" {
		return domainerrors.ErrValidationFailed.WithDetails("accessToken: required")
	}

	provider, err := h.registry.Provider(providerParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	grant, err := provider.Adapt(ctx, &service.ProviderCredential{AccessToken: req.AccessToken, IDToken: req.IDToken})
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.backend.ProviderLogin(ctx, grant)
	if err != nil {
		var backendErr *service.BackendError
		if errors.As(err, &backendErr) {
			return response.Error(c, backendErr.StatusCode, domainerrors.ErrBackendRejected.ErrorCode(),
				domainerrors.ErrBackendRejected.Message(), backendErr.Message)
		}

		return errors.Wrap(domainerrors.ErrBackendRejected, err.Error())
	}

	out := RelayLoginResponse{RequiresAdditionalInfo: result.RequiresAdditionalInfo}
	if result.RequiresAdditionalInfo {
		out.Profile = &result.Profile
	} else if result.Session != nil {
		out.User = result.Session.User
		out.AccessToken = result.Session.Token
	}

	return c.JSON(http.StatusOK, out)
}
