package middleware

import (
	"net/http"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultCookieName = "sid"

// ClientSessionMiddleware binds every request to a browser client through an opaque cookie.
// The cookie carries only a random identifier; all state stays server side.
type ClientSessionMiddleware struct {
	name   string
	domain string
	secure bool
	maxAge time.Duration
}

// NewClientSessionMiddleware creates the cookie middleware from configuration
func NewClientSessionMiddleware(cfg *config.Config) *ClientSessionMiddleware {
	m := &ClientSessionMiddleware{name: defaultCookieName}
	if cfg.Cookie != nil {
		if cfg.Cookie.Name != "" {
			m.name = cfg.Cookie.Name
		}
		m.domain = cfg.Cookie.Domain
		m.secure = cfg.Cookie.Secure
		m.maxAge = cfg.Cookie.MaxAge
	}

	return m
}

// Process reads the client cookie, issuing a new identifier when it is missing or malformed
func (m *ClientSessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := ""
		if cookie, err := c.Cookie(m.name); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				clientID = cookie.Value
			}
		}

		if clientID == "" {
			clientID = uuid.NewString()
			c.SetCookie(m.cookie(clientID))
		}

		deliverycontext.SetClientID(c, clientID)

		return next(c)
	}
}

func (m *ClientSessionMiddleware) cookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	// Apple posts its callback from appleid.apple.com; only SameSite=None cookies survive that.
	if m.secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	if m.maxAge > 0 {
		cookie.MaxAge = int(m.maxAge.Seconds())
	}

	return cookie
}
