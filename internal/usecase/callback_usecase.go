package usecase

import (
	"context"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"
)

// HandleCallbackInput is what a provider sends back to the redirect URI.
type HandleCallbackInput struct {
	ClientID string
	Provider entity.ProviderType
	Code     string
	State    string
	Error    string

	// Apple posts the user's name with the first form_post callback only.
	GivenName  string
	FamilyName string
}

// SignInWithCredentialInput is the result of a popup or SDK sign-in.
type SignInWithCredentialInput struct {
	ClientID   string
	Provider   entity.ProviderType
	Credential *service.ProviderCredential
}

// CompleteAdditionalInfoInput is a submitted additional-info form.
type CompleteAdditionalInfoInput struct {
	ClientID string
	Provider entity.ProviderType
	Form     AdditionalInfoForm
}

// LoginRedirect starts a provider login. State doubles as the id_token nonce for popup sign-in.
type LoginRedirect struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

// CallbackUsecase reconciles provider callbacks into sessions.
// Every reconciliation returns an outcome; failures are carried in CallbackOutcome.Err.
type CallbackUsecase interface {
	// BeginLogin stores a fresh state nonce and returns the provider's authorization URL.
	BeginLogin(ctx context.Context, clientID string, provider entity.ProviderType) (*LoginRedirect, error)

	HandleCallback(ctx context.Context, input HandleCallbackInput) *entity.CallbackOutcome
	SignInWithCredential(ctx context.Context, input SignInWithCredentialInput) *entity.CallbackOutcome

	// PendingForm returns the additional-info form prefilled from the pending profile.
	PendingForm(ctx context.Context, clientID string, provider entity.ProviderType) (*AdditionalInfoForm, error)

	CompleteAdditionalInfo(ctx context.Context, input CompleteAdditionalInfoInput) *entity.CallbackOutcome
	CancelAdditionalInfo(ctx context.Context, clientID string, provider entity.ProviderType) *entity.CallbackOutcome
}
