// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"authgate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads backend bearer tokens. Tokens that are not JWTs are treated as opaque.
type jwtInspector struct {
	parser *jwt.Parser
	now    func() time.Time
	leeway time.Duration
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		now:    time.Now,
		leeway: 30 * time.Second,
	}
}

// ExpiresAt returns the exp claim. Signatures are not checked: the gateway does not hold the
// backend's signing key.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// IsExpired reports whether the token is past its exp claim plus leeway. Opaque tokens never expire here.
func (i *jwtInspector) IsExpired(token string) bool {
	exp, ok := i.ExpiresAt(token)
	if !ok {
		return false
	}

	return i.now().After(exp.Add(i.leeway))
}
