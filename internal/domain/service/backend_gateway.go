package service

import (
	"context"
	"fmt"
	"net/http"

	"authgate/internal/domain/entity"
)

// BackendError is a non-2xx answer from the backend API.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports a 4xx answer, meaning the request itself was refused.
func (e *BackendError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// IsUnauthorized reports a rejected bearer token.
func (e *BackendError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// RegisterRequest is the payload of an email registration.
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// ProfileUpdate carries the editable user fields.
type ProfileUpdate struct {
	Email       string
	DisplayName string
}

// ProviderLoginResult is either an authenticated session or a request for more profile data.
type ProviderLoginResult struct {
	Session                *entity.AuthSession
	RequiresAdditionalInfo bool
	Profile                entity.ProviderProfile
}

// BackendGateway is the backend API as seen by the session and callback flows.
type BackendGateway interface {
	Login(ctx context.Context, email, password string) (*entity.AuthSession, error)
	Register(ctx context.Context, req *RegisterRequest) (*entity.AuthSession, error)

	// ProviderLogin posts a provider grant to /auth/{provider}.
	ProviderLogin(ctx context.Context, grant *ProviderGrant) (*ProviderLoginResult, error)

	// CompleteProviderLogin posts the completed profile with the temporary provider token.
	CompleteProviderLogin(ctx context.Context, provider entity.ProviderType, temporaryToken string, profile entity.ProviderProfile) (*entity.AuthSession, error)

	FetchProfile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, update *ProfileUpdate) (*entity.User, error)
}
