package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const homeURL = "https://app.example.com/"

func newCallbackEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCallbackUsecase) {
	callbacks := mockUsecase.NewMockCallbackUsecase(t)
	h := NewCallbackHandler(callbacks, newDiscardLogger())

	e := newTestEcho()
	g := e.Group("/auth/:provider")
	g.GET("/login", h.BeginLogin)
	g.GET("/callback", h.Callback)
	g.POST("/callback", h.Callback)
	g.POST("/token", h.SignInWithCredential)
	g.GET("/pending", h.PendingForm)
	g.POST("/complete", h.CompleteAdditionalInfo)
	g.POST("/cancel", h.CancelAdditionalInfo)

	return e, callbacks
}

func TestCallbackHandler_BeginLogin_Redirects(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().BeginLogin(mock.Anything, testClientID, entity.ProviderTypeNaver).
		Return(&usecase.LoginRedirect{AuthURL: "https://nid.naver.com/oauth2.0/authorize?state=s1", State: "s1"}, nil)

	rec := serve(e, http.MethodGet, "/auth/naver/login", "", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://nid.naver.com/oauth2.0/authorize?state=s1", rec.Header().Get(echo.HeaderLocation))
}

func TestCallbackHandler_BeginLogin_JSON(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().BeginLogin(mock.Anything, testClientID, entity.ProviderTypeKakao).
		Return(&usecase.LoginRedirect{AuthURL: "https://kauth.kakao.com/oauth/authorize", State: "s2"}, nil)

	rec := serve(e, http.MethodGet, "/auth/kakao/login?redirect=false", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "https://kauth.kakao.com/oauth/authorize", body.Data["authUrl"])
	assert.Equal(t, "s2", body.Data["state"])
}

func TestCallbackHandler_Callback_SuccessRedirectsHome(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, usecase.HandleCallbackInput{
		ClientID: testClientID,
		Provider: entity.ProviderTypeKakao,
		Code:     "abc123",
	}).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeKakao,
		State:      entity.CallbackStateResolvedSuccess,
		RedirectTo: homeURL,
	})

	rec := serve(e, http.MethodGet, "/auth/kakao/callback?code=abc123", "", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, homeURL, rec.Header().Get(echo.HeaderLocation))
}

func TestCallbackHandler_Callback_JSONWhenAccepted(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeKakao,
		State:      entity.CallbackStateResolvedDuplicate,
		RedirectTo: homeURL,
	})

	rec := serve(e, http.MethodGet, "/auth/kakao/callback?code=abc123", "", map[string]string{
		echo.HeaderAccept: echo.MIMEApplicationJSON,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "duplicate", body.Data["state"])
	assert.Equal(t, homeURL, body.Data["redirectTo"])
}

func TestCallbackHandler_Callback_AppleFormPost(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, usecase.HandleCallbackInput{
		ClientID:   testClientID,
		Provider:   entity.ProviderTypeApple,
		Code:       "apple-code",
		State:      "nonce-1",
		GivenName:  "Jane",
		FamilyName: "Doe",
	}).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeApple,
		State:      entity.CallbackStateAwaitingAdditionalInfo,
		RedirectTo: "https://app.example.com/auth/additional-info?provider=apple",
	})

	form := url.Values{}
	form.Set("code", "apple-code")
	form.Set("state", "nonce-1")
	form.Set("user", `{"name":{"firstName":"Jane","lastName":"Doe"},"email":"jane@privaterelay.appleid.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/apple/callback", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://app.example.com/auth/additional-info?provider=apple", rec.Header().Get(echo.HeaderLocation))
}

func TestCallbackHandler_Callback_Suppressed(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeKakao,
		State:      entity.CallbackStateValidating,
		Suppressed: true,
	})

	rec := serve(e, http.MethodGet, "/auth/kakao/callback?code=abc123", "", nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, true, decode(t, rec).Data["suppressed"])
}

func TestCallbackHandler_Callback_FailureCarriesWayHome(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeNaver,
		State:      entity.CallbackStateResolvedFailure,
		RedirectTo: homeURL,
		Err:        domainerrors.ErrCsrfMismatch,
	})

	rec := serve(e, http.MethodGet, "/auth/naver/callback?code=c&state=forged", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "CSRF_MISMATCH", body.Error.Code)
	assert.Equal(t, homeURL, body.RedirectTo)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestCallbackHandler_Callback_UnknownProviderPassedThrough(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().HandleCallback(mock.Anything, mock.MatchedBy(func(in usecase.HandleCallbackInput) bool {
		return in.Provider == "github"
	})).Return(&entity.CallbackOutcome{
		Provider:   "github",
		State:      entity.CallbackStateResolvedFailure,
		RedirectTo: homeURL,
		Err:        domainerrors.ErrUnknownProvider,
	})

	rec := serve(e, http.MethodGet, "/auth/GitHub/callback?code=c", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCallbackHandler_SignInWithCredential(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().SignInWithCredential(mock.Anything, usecase.SignInWithCredentialInput{
		ClientID:   testClientID,
		Provider:   entity.ProviderTypeKakao,
		Credential: &service.ProviderCredential{AccessToken: "tok1"},
	}).Return(&entity.CallbackOutcome{
		Provider:   entity.ProviderTypeKakao,
		State:      entity.CallbackStateResolvedSuccess,
		RedirectTo: homeURL,
	})

	rec := serve(e, http.MethodPost, "/auth/kakao/token", `{"accessToken":"tok1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", decode(t, rec).Data["state"])
}

func TestCallbackHandler_PendingForm(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().PendingForm(mock.Anything, testClientID, entity.ProviderTypeKakao).
		Return(&usecase.AdditionalInfoForm{Email: "", Nickname: "kim"}, nil)

	rec := serve(e, http.MethodGet, "/auth/kakao/pending", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kim", decode(t, rec).Data["nickname"])
}

func TestCallbackHandler_PendingForm_NotFound(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().PendingForm(mock.Anything, testClientID, entity.ProviderTypeKakao).
		Return(nil, domainerrors.ErrPendingProfileNotFound)

	rec := serve(e, http.MethodGet, "/auth/kakao/pending", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCallbackHandler_CompleteAdditionalInfo_ValidationKeepsAwaiting(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().CompleteAdditionalInfo(mock.Anything, usecase.CompleteAdditionalInfoInput{
		ClientID: testClientID,
		Provider: entity.ProviderTypeKakao,
		Form:     usecase.AdditionalInfoForm{Email: "bad", Nickname: "k"},
	}).Return(&entity.CallbackOutcome{
		Provider: entity.ProviderTypeKakao,
		State:    entity.CallbackStateAwaitingAdditionalInfo,
		Err:      domainerrors.ErrValidationFailed.WithDetails("email: invalid"),
	})

	rec := serve(e, http.MethodPost, "/auth/kakao/complete", `{"email":"bad","nickname":"k"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "awaiting_additional_info", body.Data["state"])
}

func TestCallbackHandler_CancelAdditionalInfo(t *testing.T) {
	e, callbacks := newCallbackEcho(t)
	callbacks.EXPECT().CancelAdditionalInfo(mock.Anything, testClientID, entity.ProviderTypeNaver).
		Return(&entity.CallbackOutcome{
			Provider:   entity.ProviderTypeNaver,
			State:      entity.CallbackStateResolvedFailure,
			RedirectTo: homeURL,
			Err:        domainerrors.ErrUserCancelled,
		})

	rec := serve(e, http.MethodPost, "/auth/naver/cancel", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "USER_CANCELLED", body.Error.Code)
	assert.Equal(t, homeURL, body.RedirectTo)
}
