// Package response renders the JSON envelope shared by every gateway endpoint.
package response

import (
	"net/http"

	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Failure renders an application error with a link back to the entry page.
// Details of 5xx errors are not exposed.
func Failure(c echo.Context, appErr domainerrors.AppError, redirectTo string, data any) error {
	status := appErr.HTTPCode()
	details := appErr.Details()
	if status >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(status, domainerrors.Response{
		Success: false,
		Code:    status,
		Message: appErr.Message(),
		Data:    data,
		Error: &domainerrors.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: details,
		},
		RedirectTo: redirectTo,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_REQUEST_BODY", message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
