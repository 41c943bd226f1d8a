// Package naver adapts Naver Login to the callback flow.
package naver

import (
	"context"
	"net/http"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	"authgate/internal/infra/auth"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	naverAuthURL    = "https://nid.naver.com/oauth2.0/authorize"
	naverTokenURL   = "https://nid.naver.com/oauth2.0/token"
	naverProfileURL = "https://openapi.naver.com/v1/nid/me"

	naverResultOK = "00"
)

// OAuthService handles Naver OAuth infrastructure operations
type OAuthService struct {
	oauth      *oauth2.Config
	profileURL string
	httpClient *http.Client
}

type naverProfileResponse struct {
	ResultCode string `json:"resultcode"`
	Message    string `json:"message"`
	Response   struct {
		ID           string `json:"id"`
		Nickname     string `json:"nickname"`
		Email        string `json:"email"`
		ProfileImage string `json:"profile_image"`
	} `json:"response"`
}

// NewOAuthService creates a new Naver OAuth service. Naver rejects token requests without the client secret.
func NewOAuthService(cfg config.ProviderConfig, httpClient *http.Client) (*OAuthService, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("naver client id and secret are required")
	}

	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = naverAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = naverTokenURL
	}
	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = naverProfileURL
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: profileURL,
		httpClient: httpClient,
	}, nil
}

// Type returns the OAuth provider type
func (s *OAuthService) Type() entity.ProviderType {
	return entity.ProviderTypeNaver
}

// RequiresState is true: Naver always echoes state and the callback must match it.
func (s *OAuthService) RequiresState() bool {
	return true
}

// AuthURL builds the Naver authorization URL.
func (s *OAuthService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and loads the profile.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.ProviderGrant, error) {
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "naver token exchange: %v", err)
	}

	return s.grantFor(ctx, token.AccessToken)
}

// Adapt accepts an access token obtained by the Naver JS SDK.
func (s *OAuthService) Adapt(ctx context.Context, credential *service.ProviderCredential) (*service.ProviderGrant, error) {
	if credential == nil {
		return nil, errors.WithStack(domainerrors.ErrSDKNotLoaded)
	}
	if credential.Error != "" {
		return nil, errors.WithStack(domainerrors.ProviderFailure(credential.Error))
	}
	if credential.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, "naver access token is missing")
	}

	return s.grantFor(ctx, credential.AccessToken)
}

func (s *OAuthService) grantFor(ctx context.Context, accessToken string) (*service.ProviderGrant, error) {
	var profile naverProfileResponse
	if err := auth.FetchProfile(ctx, s.httpClient, s.profileURL, accessToken, &profile); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "naver profile: %v", err)
	}
	if profile.ResultCode != naverResultOK {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "naver profile: %s %s", profile.ResultCode, profile.Message)
	}

	return &service.ProviderGrant{
		Provider:    entity.ProviderTypeNaver,
		AccessToken: accessToken,
		Profile: entity.ProviderProfile{
			ID:        profile.Response.ID,
			Nickname:  profile.Response.Nickname,
			Email:     profile.Response.Email,
			AvatarURL: profile.Response.ProfileImage,
		},
	}, nil
}
