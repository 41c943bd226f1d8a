package handler

import (
	"net/http"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/middleware"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	"authgate/internal/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the email login and session endpoints.
type AuthHandler struct {
	sessions usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// SessionResponse is the browser-visible view of a session. The bearer token never leaves the gateway.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
}

func newSessionResponse(session *entity.AuthSession) SessionResponse {
	if !session.IsAuthenticated() {
		return SessionResponse{}
	}

	return SessionResponse{Authenticated: true, User: session.User}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type updateProfileRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Login handles an email login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	input := usecase.LoginInput{
		ClientID: deliverycontext.GetClientID(c),
		Email:    req.Email,
		Password: req.Password,
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.sessions.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session), "Login successful")
}

// Register handles an email registration, signing the client in on success.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	input := usecase.RegisterInput{
		ClientID:    deliverycontext.GetClientID(c),
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.sessions.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSessionResponse(session), "Registration successful")
}

// Logout clears the client's session and durable token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), deliverycontext.GetClientID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{}, "Logout successful")
}

// Session returns the current session, restoring it from the durable token after a restart.
func (h *AuthHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()
	clientID := deliverycontext.GetClientID(c)

	session := h.sessions.Current(ctx, clientID)
	if !session.IsAuthenticated() {
		session = h.sessions.Rehydrate(ctx, clientID)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session), "")
}

// GetProfile returns the signed-in user. Requires SessionMiddleware.RequireSession.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	return response.Success(c, http.StatusOK, middleware.SessionFrom(c).User, "")
}

// UpdateProfile edits the signed-in user. Requires SessionMiddleware.RequireSession.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	input := usecase.UpdateProfileInput{
		ClientID:    deliverycontext.GetClientID(c),
		Email:       req.Email,
		DisplayName: req.DisplayName,
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.sessions.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}
