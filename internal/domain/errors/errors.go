package errors

import (
	"net/http"

	"authgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the original via errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches on the business error code so detailed copies compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Callback-related errors
	ErrMissingCode = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CODE",
		"인가 코드가 없습니다. 다시 로그인해 주세요.",
		"",
	)

	ErrProviderError = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_ERROR",
		"소셜 로그인 제공자가 오류를 반환했습니다.",
		"",
	)

	ErrCsrfMismatch = NewBaseError(
		http.StatusBadRequest,
		"CSRF_MISMATCH",
		"로그인 요청이 유효하지 않습니다. 다시 시도해 주세요.",
		"",
	)

	ErrExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"EXCHANGE_FAILED",
		"인가 코드 교환에 실패했습니다.",
		"",
	)

	ErrBackendRejected = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_REJECTED",
		"로그인 처리 중 오류가 발생했습니다.",
		"",
	)

	ErrSDKNotLoaded = NewBaseError(
		http.StatusServiceUnavailable,
		"SDK_NOT_LOADED",
		"로그인 모듈을 불러오지 못했습니다.",
		"",
	)

	ErrUserCancelled = NewBaseError(
		http.StatusBadRequest,
		"USER_CANCELLED",
		"로그인이 취소되었습니다.",
		"",
	)

	ErrUnknownProvider = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_PROVIDER",
		"지원하지 않는 로그인 방식입니다.",
		"",
	)

	ErrPendingProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PENDING_PROFILE_NOT_FOUND",
		"추가 정보 입력 대기 중인 로그인이 없습니다.",
		"",
	)

	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"이메일 또는 비밀번호가 올바르지 않습니다.",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"로그인이 필요합니다.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값을 확인해 주세요.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"시스템 내부 오류가 발생했습니다.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "데이터 저장에 실패했습니다."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ProviderFailure maps an OAuth error code reported by a provider or its SDK.
// Cancellation codes become ErrUserCancelled, anything else ErrProviderError.
func ProviderFailure(code string) *BaseError {
	switch code {
	case "access_denied", "user_cancelled_authorize", "popup_closed_by_user", "user_cancelled", "cancelled":
		return ErrUserCancelled.WithDetails(code)
	default:
		return ErrProviderError.WithDetails(code)
	}
}
