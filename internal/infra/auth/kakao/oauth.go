// Package kakao adapts Kakao Login to the callback flow.
package kakao

import (
	"context"
	"encoding/json"
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
	kakaoAuthURL    = "https://kauth.kakao.com/oauth/authorize"
	kakaoTokenURL   = "https://kauth.kakao.com/oauth/token"
	kakaoProfileURL = "https://kapi.kakao.com/v2/user/me"

	// Kakao expects consent items comma separated in a single scope value.
	kakaoScopes = "profile_nickname,account_email"
)

// OAuthService handles Kakao OAuth infrastructure operations
type OAuthService struct {
	oauth      *oauth2.Config
	profileURL string
	httpClient *http.Client
}

// kakaoProfile is the subset of /v2/user/me the gateway reads.
type kakaoProfile struct {
	ID           json.Number `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// NewOAuthService creates a new Kakao OAuth service
func NewOAuthService(cfg config.ProviderConfig, httpClient *http.Client) *OAuthService {
	endpoint := oauth2.Endpoint{
		AuthURL:   valueOr(cfg.AuthURL, kakaoAuthURL),
		TokenURL:  valueOr(cfg.TokenURL, kakaoTokenURL),
		AuthStyle: oauth2.AuthStyleInParams,
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{kakaoScopes},
			Endpoint:     endpoint,
		},
		profileURL: valueOr(cfg.ProfileURL, kakaoProfileURL),
		httpClient: httpClient,
	}
}

// Type returns the OAuth provider type
func (s *OAuthService) Type() entity.ProviderType {
	return entity.ProviderTypeKakao
}

// RequiresState is false: Kakao callbacks are checked against a nonce only when one was issued.
func (s *OAuthService) RequiresState() bool {
	return false
}

// AuthURL builds the Kakao authorization URL.
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
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "kakao token exchange: %v", err)
	}

	return s.grantFor(ctx, token.AccessToken)
}

// Adapt accepts an access token obtained by the Kakao JS SDK.
func (s *OAuthService) Adapt(ctx context.Context, credential *service.ProviderCredential) (*service.ProviderGrant, error) {
	if credential == nil {
		return nil, errors.WithStack(domainerrors.ErrSDKNotLoaded)
	}
	if credential.Error != "" {
		return nil, errors.WithStack(domainerrors.ProviderFailure(credential.Error))
	}
	if credential.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, "kakao access token is missing")
	}

	return s.grantFor(ctx, credential.AccessToken)
}

func (s *OAuthService) grantFor(ctx context.Context, accessToken string) (*service.ProviderGrant, error) {
	var profile kakaoProfile
	if err := auth.FetchProfile(ctx, s.httpClient, s.profileURL, accessToken, &profile); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "kakao profile: %v", err)
	}

	return &service.ProviderGrant{
		Provider:    entity.ProviderTypeKakao,
		AccessToken: accessToken,
		Profile: entity.ProviderProfile{
			ID:        profile.ID.String(),
			Nickname:  profile.KakaoAccount.Profile.Nickname,
			Email:     profile.KakaoAccount.Email,
			AvatarURL: profile.KakaoAccount.Profile.ProfileImageURL,
		},
	}, nil
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}

	return fallback
}
