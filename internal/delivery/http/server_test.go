package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Cookie: &config.CookieConfig{Name: "sid"}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://app.example.com"}

	return cfg
}

func TestNewEcho_MiddlewareChain(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	var clientID, requestID string
	e.GET("/whoami", func(c echo.Context) error {
		clientID = deliverycontext.GetClientID(c)
		requestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, clientID)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, clientID, rec.Result().Cookies()[0].Value)
}

func TestNewEcho_ErrorEnvelope(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/fail", func(c echo.Context) error {
		return domainerrors.ErrUnauthenticated
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHENTICATED"`)
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newEcho(newTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 4096)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
