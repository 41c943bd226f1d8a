package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := pkgerrors.Wrap(ErrExchangeFailed.WithDetails("token endpoint 500"), "kakao")

	assert.ErrorIs(t, err, ErrExchangeFailed)
	assert.NotErrorIs(t, err, ErrBackendRejected)

	var appErr AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXCHANGE_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "token endpoint 500", appErr.Details())
}

func TestProviderFailure(t *testing.T) {
	tests := []struct {
		code string
		want *BaseError
	}{
		{code: "access_denied", want: ErrUserCancelled},
		{code: "user_cancelled_authorize", want: ErrUserCancelled},
		{code: "popup_closed_by_user", want: ErrUserCancelled},
		{code: "server_error", want: ErrProviderError},
		{code: "invalid_request", want: ErrProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := ProviderFailure(tt.code)
			assert.ErrorIs(t, got, tt.want)
			assert.Equal(t, tt.code, got.Details())
		})
	}
}
