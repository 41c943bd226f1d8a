package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	"authgate/internal/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CallbackHandler drives the social login flows.
type CallbackHandler struct {
	callbacks usecase.CallbackUsecase
	logger    *slog.Logger
}

// NewCallbackHandler is the constructor for CallbackHandler, injected by Fx.
func NewCallbackHandler(callbacks usecase.CallbackUsecase, logger *slog.Logger) *CallbackHandler {
	return &CallbackHandler{callbacks: callbacks, logger: logger}
}

// appleUser is the JSON Apple posts in the "user" form field on first consent.
type appleUser struct {
	Name struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
}

// BeginLogin redirects the browser to the provider, or returns the URL and state when ?redirect=false.
func (h *CallbackHandler) BeginLogin(c echo.Context) error {
	redirect, err := h.callbacks.BeginLogin(c.Request().Context(), deliverycontext.GetClientID(c), providerParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, redirect, "")
	}

	return c.Redirect(http.StatusFound, redirect.AuthURL)
}

// Callback handles the provider redirect. Kakao and Naver use GET; Apple uses form_post.
func (h *CallbackHandler) Callback(c echo.Context) error {
	input := usecase.HandleCallbackInput{
		ClientID: deliverycontext.GetClientID(c),
		Provider: providerParam(c),
		Code:     c.FormValue("code"),
		State:    c.FormValue("state"),
		Error:    c.FormValue("error"),
	}

	if raw := c.FormValue("user"); raw != "" {
		var user appleUser
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			h.logger.Warn("Ignoring malformed Apple user payload", slog.Any("error", err))
		} else {
			input.GivenName = user.Name.FirstName
			input.FamilyName = user.Name.LastName
		}
	}

	out := h.callbacks.HandleCallback(c.Request().Context(), input)

	return h.render(c, out, true)
}

// SignInWithCredential completes a popup or SDK sign-in.
func (h *CallbackHandler) SignInWithCredential(c echo.Context) error {
	var credential service.ProviderCredential
	if err := c.Bind(&credential); err != nil {
		return response.BindingError(c, "Invalid credential")
	}

	out := h.callbacks.SignInWithCredential(c.Request().Context(), usecase.SignInWithCredentialInput{
		ClientID:   deliverycontext.GetClientID(c),
		Provider:   providerParam(c),
		Credential: &credential,
	})

	return h.render(c, out, false)
}

// PendingForm returns the prefilled additional-info form.
func (h *CallbackHandler) PendingForm(c echo.Context) error {
	form, err := h.callbacks.PendingForm(c.Request().Context(), deliverycontext.GetClientID(c), providerParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, form, "")
}

// CompleteAdditionalInfo submits the additional-info form.
func (h *CallbackHandler) CompleteAdditionalInfo(c echo.Context) error {
	var form usecase.AdditionalInfoForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "Invalid additional info")
	}

	out := h.callbacks.CompleteAdditionalInfo(c.Request().Context(), usecase.CompleteAdditionalInfoInput{
		ClientID: deliverycontext.GetClientID(c),
		Provider: providerParam(c),
		Form:     form,
	})

	return h.render(c, out, false)
}

// CancelAdditionalInfo abandons the pending login.
func (h *CallbackHandler) CancelAdditionalInfo(c echo.Context) error {
	out := h.callbacks.CancelAdditionalInfo(c.Request().Context(), deliverycontext.GetClientID(c), providerParam(c))

	return h.render(c, out, false)
}

// render writes a callback outcome. Browser navigations are redirected on success;
// failures are always answered with the error envelope and a link home.
func (h *CallbackHandler) render(c echo.Context, out *entity.CallbackOutcome, navigation bool) error {
	if out.Suppressed {
		return response.Success(c, http.StatusAccepted, out, "Login already in progress")
	}

	if out.Err != nil {
		var appErr domainerrors.AppError
		if !errors.As(out.Err, &appErr) {
			appErr = domainerrors.ErrInternalError
		}

		return response.Failure(c, appErr, out.RedirectTo, out)
	}

	if navigation && out.RedirectTo != "" && !wantsJSON(c) {
		status := http.StatusFound
		if c.Request().Method == http.MethodPost {
			status = http.StatusSeeOther
		}

		return c.Redirect(status, out.RedirectTo)
	}

	return response.Success(c, http.StatusOK, out, "")
}
