package repository

import (
	"context"

	"authgate/internal/domain/entity"
	"authgate/internal/errors"
)

// ErrPendingProfileNotFound is returned when no additional-info flow is waiting for a client.
var ErrPendingProfileNotFound = errors.New("pending profile not found")

// ClientStateRepository is the session-scoped client storage. Entries expire and are keyed
// by client and provider.
type ClientStateRepository interface {
	// ProcessedCode returns the last code reconciled for the provider, or "" when none.
	ProcessedCode(ctx context.Context, clientID string, provider entity.ProviderType) (string, error)

	// MarkCodeProcessed records a successfully exchanged code.
	MarkCodeProcessed(ctx context.Context, clientID string, provider entity.ProviderType, code string) error

	// SaveStateNonce stores the CSRF nonce sent with the authorization redirect.
	SaveStateNonce(ctx context.Context, clientID string, provider entity.ProviderType, nonce string) error

	// ConsumeStateNonce returns and deletes the stored nonce, or "" when none.
	ConsumeStateNonce(ctx context.Context, clientID string, provider entity.ProviderType) (string, error)

	// SavePendingProfile stores the profile awaiting additional info.
	SavePendingProfile(ctx context.Context, clientID string, pending *entity.PendingProfile) error

	// FindPendingProfile returns the profile awaiting additional info.
	FindPendingProfile(ctx context.Context, clientID string, provider entity.ProviderType) (*entity.PendingProfile, error)

	// DeletePendingProfile discards the pending profile and its temporary token.
	DeletePendingProfile(ctx context.Context, clientID string, provider entity.ProviderType) error
}
