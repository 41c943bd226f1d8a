package entity

import "authgate/internal/errors"

// ErrIncompleteSession is returned when a session would carry a user without a token or the reverse.
var ErrIncompleteSession = errors.New("session requires both user and token")

// AuthSession is the authentication state of one client.
// User is present if and only if Token is present.
type AuthSession struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"-"`
}

// NewAuthSession builds an authenticated session, rejecting partial state.
func NewAuthSession(user *User, token string) (*AuthSession, error) {
	if user == nil || token == "" {
		return nil, ErrIncompleteSession
	}

	return &AuthSession{User: user, Token: token}, nil
}

// IsAuthenticated reports whether the session holds a user and token.
func (s *AuthSession) IsAuthenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// Clone returns a copy that callers may modify freely.
func (s *AuthSession) Clone() *AuthSession {
	if s == nil {
		return &AuthSession{}
	}
	out := &AuthSession{Token: s.Token}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}

	return out
}
