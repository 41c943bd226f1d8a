package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := inspector.ExpiresAt(signHS256(t, jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}))

	assert.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestJWTInspector_IsExpired(t *testing.T) {
	inspector := NewJWTInspector()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "valid token",
			token: signHS256(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "expired token",
			token: signHS256(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()}),
			want:  true,
		},
		{
			name:  "expired within leeway",
			token: signHS256(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-5 * time.Second).Unix()}),
			want:  false,
		},
		{
			name:  "no exp claim",
			token: signHS256(t, jwt.MapClaims{"sub": "u1"}),
			want:  false,
		},
		{
			name:  "opaque token",
			token: "tok1",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.IsExpired(tt.token))
		})
	}
}
