package entity

import (
	"strings"
	"time"
)

// ProviderType identifies how a user signed in.
type ProviderType string

const (
	ProviderTypeEmail ProviderType = "email"
	ProviderTypeKakao ProviderType = "kakao"
	ProviderTypeNaver ProviderType = "naver"
	ProviderTypeApple ProviderType = "apple"
)

// ParseProviderType maps a route segment to a social provider. Email is not a social provider.
func ParseProviderType(raw string) (ProviderType, bool) {
	switch p := ProviderType(strings.ToLower(strings.TrimSpace(raw))); p {
	case ProviderTypeKakao, ProviderTypeNaver, ProviderTypeApple:
		return p, true
	default:
		return "", false
	}
}

func (p ProviderType) String() string {
	return string(p)
}

// ProviderProfile is the provider-neutral shape of a social profile.
type ProviderProfile struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	AvatarURL string `json:"profileImage,omitempty"`
}

// PendingProfile holds a social login the backend could not finish without more profile data.
// It lives only in session-scoped storage and is destroyed on completion or cancel.
type PendingProfile struct {
	Provider       ProviderType    `json:"provider"`
	Profile        ProviderProfile `json:"profile"`
	TemporaryToken string          `json:"-"` // Provider token replayed to the completion endpoint.
	CreatedAt      time.Time       `json:"createdAt"`
}
