package handler

import (
	"net/http"
	"testing"

	"authgate/internal/delivery/http/middleware"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	h := NewAuthHandler(sessions)
	guard := middleware.NewSessionMiddleware(sessions)

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/session", h.Session)
	e.GET("/auth/profile", h.GetProfile, guard.RequireSession)
	e.POST("/auth/profile", h.UpdateProfile, guard.RequireSession)

	return e, sessions
}

func signedIn() *entity.AuthSession {
	return &entity.AuthSession{
		User:  &entity.User{ID: "u-1", Email: "a@example.com", DisplayName: "Alice"},
		Token: "backend-token",
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Login(mock.Anything, usecase.LoginInput{
		ClientID: testClientID,
		Email:    "a@example.com",
		Password: "pw",
	}).Return(signedIn(), nil)

	rec := serve(e, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, true, body.Data["authenticated"])
	assert.NotContains(t, rec.Body.String(), "backend-token")
}

func TestAuthHandler_Login_ValidationFailed(t *testing.T) {
	e, _ := newAuthEcho(t)

	rec := serve(e, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serve(e, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"bad"}`, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestAuthHandler_Register(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		ClientID:    testClientID,
		Email:       "a@example.com",
		Password:    "pw",
		DisplayName: "Alice",
	}).Return(signedIn(), nil)

	rec := serve(e, http.MethodPost, "/auth/register", `{"email":"a@example.com","password":"pw","displayName":"Alice"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Logout(mock.Anything, testClientID).Return(nil)

	rec := serve(e, http.MethodPost, "/auth/logout", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec).Data["authenticated"])
}

func TestAuthHandler_Session_RehydratesWhenEmpty(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Current(mock.Anything, testClientID).Return(&entity.AuthSession{})
	sessions.EXPECT().Rehydrate(mock.Anything, testClientID).Return(signedIn())

	rec := serve(e, http.MethodGet, "/auth/session", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body.Data["authenticated"])
	user, ok := body.Data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", user["email"])
}

func TestAuthHandler_Session_CurrentSkipsRehydrate(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Current(mock.Anything, testClientID).Return(signedIn())

	rec := serve(e, http.MethodGet, "/auth/session", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	sessions.AssertNotCalled(t, "Rehydrate", mock.Anything, mock.Anything)
}

func TestAuthHandler_Profile_RequiresSession(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Current(mock.Anything, testClientID).Return(&entity.AuthSession{})
	sessions.EXPECT().Rehydrate(mock.Anything, testClientID).Return(&entity.AuthSession{})

	rec := serve(e, http.MethodGet, "/auth/profile", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	e, sessions := newAuthEcho(t)
	sessions.EXPECT().Current(mock.Anything, testClientID).Return(signedIn())
	sessions.EXPECT().UpdateProfile(mock.Anything, usecase.UpdateProfileInput{
		ClientID:    testClientID,
		Email:       "b@example.com",
		DisplayName: "Bob",
	}).Return(&entity.User{ID: "u-1", Email: "b@example.com", DisplayName: "Bob"}, nil)

	rec := serve(e, http.MethodPost, "/auth/profile", `{"email":"b@example.com","displayName":"Bob"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bob", decode(t, rec).Data["displayName"])
}
