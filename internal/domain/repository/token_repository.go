// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authgate/internal/errors"
)

// ErrTokenNotFound is returned when no bearer token is persisted for a client.
var ErrTokenNotFound = errors.New("client token not found")

// TokenRepository is the durable client storage for bearer tokens.
// It survives gateway restarts, like a browser's local storage survives reloads.
type TokenRepository interface {
	// FindToken returns the persisted bearer token for a client.
	FindToken(ctx context.Context, clientID string) (string, error)

	// SaveToken persists or replaces the bearer token for a client.
	SaveToken(ctx context.Context, clientID, token string) error

	// DeleteToken removes the client's token. Deleting a missing token is not an error.
	DeleteToken(ctx context.Context, clientID string) error
}
