package middleware

import (
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keySession = "session"

// SessionMiddleware guards routes that need an authenticated client.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession rejects the request unless the client holds a session,
// rehydrating from the durable token after a restart.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		clientID := deliverycontext.GetClientID(c)

		session := m.sessions.Current(ctx, clientID)
		if !session.IsAuthenticated() {
			session = m.sessions.Rehydrate(ctx, clientID)
		}
		if !session.IsAuthenticated() {
			return domainerrors.ErrUnauthenticated
		}

		c.Set(keySession, session)

		return next(c)
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c echo.Context) *entity.AuthSession {
	if s, ok := c.Get(keySession).(*entity.AuthSession); ok {
		return s
	}

	return &entity.AuthSession{}
}
