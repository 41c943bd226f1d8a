package apple

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "com.example.web"

type appleFixture struct {
	idKey      *rsa.PrivateKey
	signingKey *ecdsa.PrivateKey
	keySet     oidc.KeySet
}

func newAppleFixture(t *testing.T) *appleFixture {
	t.Helper()

	idKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	signingKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	return &appleFixture{
		idKey:      idKey,
		signingKey: signingKey,
		keySet:     &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&idKey.PublicKey}},
	}
}

func (f *appleFixture) idToken(t *testing.T, audience, nonce string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   appleIssuer,
		"aud":   audience,
		"sub":   "001234.apple.sub",
		"email": "relay@privaterelay.appleid.com",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	if nonce != "" {
		claims["nonce"] = nonce
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(f.idKey)
	require.NoError(t, err)

	return token
}

func TestOAuthService_AuthURL(t *testing.T) {
	svc := newOAuthService(config.AppleConfig{
		ClientID:    testClientID,
		RedirectURL: "https://gw.example.com/auth/apple/callback",
	}, nil, nil, nil)

	parsed, err := url.Parse(svc.AuthURL("nonce-3"))
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "appleid.apple.com", parsed.Host)
	assert.Equal(t, "form_post", q.Get("response_mode"))
	assert.Equal(t, "name email", q.Get("scope"))
	assert.Equal(t, "nonce-3", q.Get("state"))
	assert.True(t, svc.RequiresState())
}

func TestOAuthService_Adapt(t *testing.T) {
	f := newAppleFixture(t)
	svc := newOAuthService(config.AppleConfig{ClientID: testClientID}, f.keySet, nil, nil)

	grant, err := svc.Adapt(context.Background(), &service.ProviderCredential{
		IDToken:    f.idToken(t, testClientID, "nonce-7"),
		GivenName:  "Gildong",
		FamilyName: "Hong",
		Nonce:      "nonce-7",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeApple, grant.Provider)
	assert.Equal(t, "001234.apple.sub", grant.Profile.ID)
	assert.Equal(t, "relay@privaterelay.appleid.com", grant.Profile.Email)
	assert.Equal(t, "Gildong Hong", grant.Profile.Nickname)
	assert.Equal(t, grant.IDToken, grant.Credential())
}

func TestOAuthService_Adapt_Failures(t *testing.T) {
	f := newAppleFixture(t)
	svc := newOAuthService(config.AppleConfig{ClientID: testClientID}, f.keySet, nil, nil)
	unloaded := newOAuthService(config.AppleConfig{}, nil, nil, nil)

	tests := []struct {
		name       string
		svc        *OAuthService
		credential *service.ProviderCredential
		wantErr    error
	}{
		{name: "sdk not loaded", svc: unloaded, credential: &service.ProviderCredential{IDToken: "x"}, wantErr: domainerrors.ErrSDKNotLoaded},
		{name: "popup cancelled", svc: svc, credential: &service.ProviderCredential{Error: "user_cancelled_authorize"}, wantErr: domainerrors.ErrUserCancelled},
		{name: "missing id_token", svc: svc, credential: &service.ProviderCredential{}, wantErr: domainerrors.ErrExchangeFailed},
		{name: "wrong audience", svc: svc, credential: &service.ProviderCredential{IDToken: f.idToken(t, "other.client", "n1"), Nonce: "n1"}, wantErr: domainerrors.ErrExchangeFailed},
		{name: "no nonce issued", svc: svc, credential: &service.ProviderCredential{IDToken: f.idToken(t, testClientID, "n1")}, wantErr: domainerrors.ErrCsrfMismatch},
		{name: "nonce mismatch", svc: svc, credential: &service.ProviderCredential{IDToken: f.idToken(t, testClientID, "n1"), Nonce: "n2"}, wantErr: domainerrors.ErrCsrfMismatch},
		{name: "token without nonce", svc: svc, credential: &service.ProviderCredential{IDToken: f.idToken(t, testClientID, ""), Nonce: "n1"}, wantErr: domainerrors.ErrCsrfMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Adapt(context.Background(), tt.credential)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOAuthService_Exchange(t *testing.T) {
	f := newAppleFixture(t)
	idToken := f.idToken(t, testClientID, "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "apple-code", r.PostForm.Get("code"))

		secret, err := jwt.Parse(r.PostForm.Get("client_secret"), func(token *jwt.Token) (any, error) {
			assert.Equal(t, "KEY123", token.Header["kid"])
			return &f.signingKey.PublicKey, nil
		}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithAudience(appleIssuer), jwt.WithIssuer("TEAM123"))
		require.NoError(t, err)
		sub, _ := secret.Claims.GetSubject()
		assert.Equal(t, testClientID, sub)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "apple-at",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	defer srv.Close()

	svc := newOAuthService(config.AppleConfig{
		ClientID: testClientID,
		TokenURL: srv.URL,
		TeamID:   "TEAM123",
		KeyID:    "KEY123",
	}, f.keySet, f.signingKey, srv.Client())

	grant, err := svc.Exchange(context.Background(), "apple-code")

	require.NoError(t, err)
	assert.Equal(t, idToken, grant.IDToken)
	assert.Equal(t, "001234.apple.sub", grant.Profile.ID)
}

func TestOAuthService_Exchange_NoSigningKey(t *testing.T) {
	f := newAppleFixture(t)
	svc := newOAuthService(config.AppleConfig{ClientID: testClientID}, f.keySet, nil, nil)

	_, err := svc.Exchange(context.Background(), "apple-code")

	assert.ErrorIs(t, err, domainerrors.ErrExchangeFailed)
}
