// Package handler contains the HTTP handlers of the gateway.
package handler

import (
	"net/http"
	"strings"

	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// providerParam reads the :provider route segment. Unknown names are passed through
// so the use case can report them as UNKNOWN_PROVIDER with a way home.
func providerParam(c echo.Context) entity.ProviderType {
	raw := c.Param("provider")
	if p, ok := entity.ParseProviderType(raw); ok {
		return p
	}

	return entity.ProviderType(strings.ToLower(strings.TrimSpace(raw)))
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
