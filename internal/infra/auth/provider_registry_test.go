package auth

import (
	"io"
	"log/slog"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	mockService "authgate/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRegistry(t *testing.T) {
	kakao := mockService.NewMockOAuthProvider(t)
	kakao.EXPECT().Type().Return(entity.ProviderTypeKakao)
	naver := mockService.NewMockOAuthProvider(t)
	naver.EXPECT().Type().Return(entity.ProviderTypeNaver)

	registry := NewProviderRegistry(RegistryParams{
		Providers: []service.OAuthProvider{naver, nil, kakao},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	got, err := registry.Provider(entity.ProviderTypeKakao)
	require.NoError(t, err)
	assert.Same(t, kakao, got)

	_, err = registry.Provider(entity.ProviderTypeApple)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)

	assert.Equal(t, []entity.ProviderType{entity.ProviderTypeKakao, entity.ProviderTypeNaver}, registry.Providers())
}
