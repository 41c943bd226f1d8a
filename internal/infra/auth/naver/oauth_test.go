package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNaverServer(t *testing.T, profileBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2.0/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "naver-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("code") != "naver-code" {
			// Naver answers 200 with an error body for bad codes.
			_, _ = w.Write([]byte(`{"error":"invalid_request","error_description":"no valid data in session"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"naver-at","refresh_token":"naver-rt","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/nid/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer naver-at", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(profileBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestService(t *testing.T, srv *httptest.Server) *OAuthService {
	t.Helper()

	svc, err := NewOAuthService(config.ProviderConfig{
		ClientID:     "naver-client",
		ClientSecret: "naver-secret",
		RedirectURL:  "http://localhost:8080/auth/naver/callback",
		AuthURL:      srv.URL + "/oauth2.0/authorize",
		TokenURL:     srv.URL + "/oauth2.0/token",
		ProfileURL:   srv.URL + "/v1/nid/me",
	}, srv.Client())
	require.NoError(t, err)

	return svc
}

const okProfile = `{"resultcode":"00","message":"success","response":{"id":"naver-42","nickname":"네이버","email":"n@naver.com","profile_image":"https://phinf.pstatic.net/a.png"}}`

func TestNewOAuthService_RequiresSecret(t *testing.T) {
	_, err := NewOAuthService(config.ProviderConfig{ClientID: "naver-client"}, nil)

	assert.Error(t, err)
}

func TestOAuthService_AuthURL(t *testing.T) {
	svc := newTestService(t, newNaverServer(t, okProfile))

	parsed, err := url.Parse(svc.AuthURL("nonce-2"))
	require.NoError(t, err)

	assert.Equal(t, "/oauth2.0/authorize", parsed.Path)
	assert.Equal(t, "nonce-2", parsed.Query().Get("state"))
	assert.Equal(t, "naver-client", parsed.Query().Get("client_id"))
	assert.True(t, svc.RequiresState())
}

func TestOAuthService_Exchange(t *testing.T) {
	svc := newTestService(t, newNaverServer(t, okProfile))

	grant, err := svc.Exchange(context.Background(), "naver-code")

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeNaver, grant.Provider)
	assert.Equal(t, "naver-at", grant.AccessToken)
	assert.Equal(t, entity.ProviderProfile{
		ID:        "naver-42",
		Nickname:  "네이버",
		Email:     "n@naver.com",
		AvatarURL: "https://phinf.pstatic.net/a.png",
	}, grant.Profile)
}

func TestOAuthService_Exchange_ErrorBody(t *testing.T) {
	svc := newTestService(t, newNaverServer(t, okProfile))

	_, err := svc.Exchange(context.Background(), "stale-code")

	assert.ErrorIs(t, err, domainerrors.ErrExchangeFailed)
}

func TestOAuthService_Exchange_ProfileResultCode(t *testing.T) {
	svc := newTestService(t, newNaverServer(t, `{"resultcode":"024","message":"Authentication failed"}`))

	_, err := svc.Exchange(context.Background(), "naver-code")

	assert.ErrorIs(t, err, domainerrors.ErrExchangeFailed)
}
