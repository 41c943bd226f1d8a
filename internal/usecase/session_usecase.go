// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"
)

// --- Input DTOs ---

// LoginInput defines the data required for an email login.
type LoginInput struct {
	ClientID string
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterInput defines the data required to create an email account.
type RegisterInput struct {
	ClientID    string
	Email       string `validate:"required,email"`
	Password    string `validate:"required"`
	DisplayName string
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	ClientID    string
	Email       string `validate:"required,email"`
	DisplayName string `validate:"required"`
}

// --- Output DTOs ---

// ProviderLoginOutput is either an installed session or the additional-info branch.
type ProviderLoginOutput struct {
	Session                *entity.AuthSession
	RequiresAdditionalInfo bool
	Profile                entity.ProviderProfile
}

// SessionUsecase owns the authenticated session of every client.
// It is the only writer of the durable token.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.AuthSession, error)
	Register(ctx context.Context, input RegisterInput) (*entity.AuthSession, error)

	// LoginWithProvider posts a provider grant to the backend and installs the session it returns.
	LoginWithProvider(ctx context.Context, clientID string, grant *service.ProviderGrant) (*ProviderLoginOutput, error)

	// InstallSession stores a session obtained outside the email and provider logins.
	InstallSession(ctx context.Context, clientID string, session *entity.AuthSession) error

	Logout(ctx context.Context, clientID string) error
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// Rehydrate restores the session from the durable token. It never fails: an unusable
	// token is cleared and an unauthenticated session returned.
	Rehydrate(ctx context.Context, clientID string) *entity.AuthSession

	// Current returns a copy of the in-memory session, unauthenticated when none.
	Current(ctx context.Context, clientID string) *entity.AuthSession

	// HasSession reports whether the client is signed in, in memory or through an unexpired
	// durable token. It makes no network call.
	HasSession(ctx context.Context, clientID string) bool
}
