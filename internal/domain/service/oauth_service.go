package service

import (
	"context"
	"strings"

	"authgate/internal/domain/entity"
)

// ProviderGrant is what a provider hands back once the user has consented.
type ProviderGrant struct {
	Provider    entity.ProviderType    // The provider that issued the grant.
	AccessToken string                 // Provider access token (Kakao, Naver).
	IDToken     string                 // Signed identity token (Apple).
	Profile     entity.ProviderProfile // Normalized profile.
	GivenName   string                 // Apple sends the name only on first consent.
	FamilyName  string
}

// Credential returns the provider token the backend verifies: the id_token for Apple,
// the access token otherwise.
func (g *ProviderGrant) Credential() string {
	if g.IDToken != "" {
		return g.IDToken
	}

	return g.AccessToken
}

// FillName records a name reported outside the token response, such as Apple's form_post
// user field. The profile nickname falls back to it when the provider gave none.
func (g *ProviderGrant) FillName(givenName, familyName string) {
	if g.GivenName == "" && g.FamilyName == "" {
		g.GivenName, g.FamilyName = givenName, familyName
	}
	if g.Profile.Nickname == "" {
		g.Profile.Nickname = DisplayName(g.GivenName, g.FamilyName)
	}
}

// DisplayName joins the name parts Apple shares on first consent.
func DisplayName(givenName, familyName string) string {
	return strings.TrimSpace(strings.TrimSpace(givenName) + " " + strings.TrimSpace(familyName))
}

// ProviderCredential is the result of a popup or SDK sign-in done by the browser.
type ProviderCredential struct {
	AccessToken string `json:"accessToken"`
	IDToken     string `json:"idToken"`
	Email       string `json:"email"`
	GivenName   string `json:"firstName"`
	FamilyName  string `json:"lastName"`
	Error       string `json:"error"` // Provider error code reported by the SDK, e.g. user_cancelled_authorize.

	// Nonce is the value issued to this client by BeginLogin, filled in server side.
	Nonce string `json:"-"`
}

// OAuthProvider adapts one social provider to the callback flow.
type OAuthProvider interface {
	// Type returns the provider this adapter serves.
	Type() entity.ProviderType

	// RequiresState reports whether callbacks must carry the CSRF state nonce.
	RequiresState() bool

	// AuthURL builds the authorization redirect URL.
	AuthURL(state string) string

	// Exchange trades a one-time authorization code for a grant with a normalized profile.
	Exchange(ctx context.Context, code string) (*ProviderGrant, error)

	// Adapt turns a popup/SDK credential into a grant.
	Adapt(ctx context.Context, credential *ProviderCredential) (*ProviderGrant, error)
}

// ProviderRegistry resolves enabled providers.
type ProviderRegistry interface {
	Provider(provider entity.ProviderType) (OAuthProvider, error)
	Providers() []entity.ProviderType
}
