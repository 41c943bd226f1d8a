package service

import "time"

// TokenInspector reads claims of backend-issued bearer tokens without verifying them.
// The backend stays the authority; inspection only avoids calls that would certainly fail.
type TokenInspector interface {
	// ExpiresAt returns the token's expiry, and false when the token carries none.
	ExpiresAt(token string) (time.Time, bool)

	// IsExpired reports whether the token's expiry has passed.
	IsExpired(token string) bool
}
