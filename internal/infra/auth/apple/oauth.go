// Package apple adapts Sign in with Apple to the callback flow.
package apple

import (
	"context"
	"crypto/ecdsa"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	appleIssuer   = "https://appleid.apple.com"
	appleAuthURL  = "https://appleid.apple.com/auth/authorize"
	appleTokenURL = "https://appleid.apple.com/auth/token"
	appleKeysURL  = "https://appleid.apple.com/auth/keys"

	clientSecretTTL = 5 * time.Minute
)

// OAuthService handles Sign in with Apple. The authorization code flow needs the team signing key;
// the JS popup flow only needs the id_token verifier.
type OAuthService struct {
	oauth      *oauth2.Config
	verifier   *oidc.IDTokenVerifier
	signingKey *ecdsa.PrivateKey
	teamID     string
	keyID      string
	httpClient *http.Client
	now        func() time.Time
}

type idTokenClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

// NewOAuthService creates the Apple adapter, loading the team key when configured.
func NewOAuthService(cfg config.AppleConfig, httpClient *http.Client) (*OAuthService, error) {
	var signingKey *ecdsa.PrivateKey
	if cfg.PrivateKeyPath != "" {
		pem, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read apple private key")
		}
		signingKey, err = jwt.ParseECPrivateKeyFromPEM(pem)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse apple private key")
		}
	}

	var keySet oidc.KeySet
	if cfg.ClientID != "" {
		keysURL := cfg.KeysURL
		if keysURL == "" {
			keysURL = appleKeysURL
		}
		keyCtx := context.Background()
		if httpClient != nil {
			keyCtx = oidc.ClientContext(keyCtx, httpClient)
		}
		keySet = oidc.NewRemoteKeySet(keyCtx, keysURL)
	}

	return newOAuthService(cfg, keySet, signingKey, httpClient), nil
}

func newOAuthService(cfg config.AppleConfig, keySet oidc.KeySet, signingKey *ecdsa.PrivateKey, httpClient *http.Client) *OAuthService {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = appleAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = appleTokenURL
	}

	var verifier *oidc.IDTokenVerifier
	if keySet != nil && cfg.ClientID != "" {
		verifier = oidc.NewVerifier(appleIssuer, keySet, &oidc.Config{ClientID: cfg.ClientID})
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: cfg.RedirectURL,
			Scopes:      []string{"name", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		verifier:   verifier,
		signingKey: signingKey,
		teamID:     cfg.TeamID,
		keyID:      cfg.KeyID,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// Type returns the OAuth provider type
func (s *OAuthService) Type() entity.ProviderType {
	return entity.ProviderTypeApple
}

// RequiresState is true for Apple.
func (s *OAuthService) RequiresState() bool {
	return true
}

// AuthURL builds the Apple authorization URL. Requesting name or email forces form_post.
func (s *OAuthService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "form_post"))
}

// Exchange redeems the code at Apple's token endpoint and verifies the returned id_token.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.ProviderGrant, error) {
	secret, err := s.clientSecret()
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "apple client secret: %v", err)
	}
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	conf := *s.oauth
	conf.ClientSecret = secret

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "apple token exchange: %v", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, "apple token response has no id_token")
	}

	idToken, err := s.verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	return grantFor(idToken, rawIDToken, "", "", "")
}

// Adapt verifies the id_token returned by the Apple JS popup. The popup is initialised with the
// nonce issued by BeginLogin, so the token must carry the one stored for this client.
func (s *OAuthService) Adapt(ctx context.Context, credential *service.ProviderCredential) (*service.ProviderGrant, error) {
	if s.verifier == nil || credential == nil {
		return nil, errors.WithStack(domainerrors.ErrSDKNotLoaded)
	}
	if credential.Error != "" {
		return nil, errors.WithStack(domainerrors.ProviderFailure(credential.Error))
	}
	if credential.IDToken == "" {
		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, "apple id_token is missing")
	}

	idToken, err := s.verify(ctx, credential.IDToken)
	if err != nil {
		return nil, err
	}
	if credential.Nonce == "" || subtle.ConstantTimeCompare([]byte(idToken.Nonce), []byte(credential.Nonce)) != 1 {
		return nil, errors.WithStack(domainerrors.ErrCsrfMismatch.WithDetails("apple id_token nonce does not match"))
	}

	return grantFor(idToken, credential.IDToken, credential.Email, credential.GivenName, credential.FamilyName)
}

func (s *OAuthService) verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error) {
	if s.verifier == nil {
		return nil, errors.WithStack(domainerrors.ErrSDKNotLoaded)
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "verify apple id_token: %v", err)
	}

	return idToken, nil
}

func grantFor(idToken *oidc.IDToken, rawIDToken, email, givenName, familyName string) (*service.ProviderGrant, error) {
	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "parse apple id_token claims: %v", err)
	}

	// The signed email wins over the one reported by the browser.
	if claims.Email != "" {
		email = claims.Email
	}

	grant := &service.ProviderGrant{
		Provider: entity.ProviderTypeApple,
		IDToken:  rawIDToken,
		Profile:  entity.ProviderProfile{ID: claims.Subject, Email: email},
	}
	grant.FillName(givenName, familyName)

	return grant, nil
}

// clientSecret mints the ES256 JWT Apple accepts as client_secret.
func (s *OAuthService) clientSecret() (string, error) {
	if s.signingKey == nil {
		return "", errors.New("apple signing key is not configured")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.teamID,
		Subject:   s.oauth.ClientID,
		Audience:  jwt.ClaimStrings{appleIssuer},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(clientSecretTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = s.keyID

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign apple client secret")
	}

	return signed, nil
}
