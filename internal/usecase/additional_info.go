package usecase

import (
	"fmt"
	"strings"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// DefaultNicknameMinLength applies when configuration leaves the minimum unset.
const DefaultNicknameMinLength = 2

// AdditionalInfoForm collects the profile fields a provider did not supply.
type AdditionalInfoForm struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// NewAdditionalInfoForm prefills the form from the provider profile.
func NewAdditionalInfoForm(profile entity.ProviderProfile) *AdditionalInfoForm {
	return &AdditionalInfoForm{
		Email:    profile.Email,
		Nickname: profile.Nickname,
	}
}

// Normalize trims surrounding whitespace from both fields.
func (f *AdditionalInfoForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
	f.Nickname = strings.TrimSpace(f.Nickname)
}

// Validate checks the normalized form. The returned error is a VALIDATION_FAILED AppError
// whose details name the offending fields.
func (f *AdditionalInfoForm) Validate(v *validator.Validate, nicknameMin int) error {
	if nicknameMin <= 0 {
		nicknameMin = DefaultNicknameMinLength
	}

	var problems []string
	if err := v.Var(f.Email, "required,email"); err != nil {
		problems = append(problems, "email: 올바른 이메일 주소를 입력해 주세요")
	}
	if err := v.Var(f.Nickname, fmt.Sprintf("required,min=%d", nicknameMin)); err != nil {
		problems = append(problems, fmt.Sprintf("nickname: %d자 이상 입력해 주세요", nicknameMin))
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

// Apply merges the form into the provider profile.
func (f *AdditionalInfoForm) Apply(profile entity.ProviderProfile) entity.ProviderProfile {
	profile.Email = f.Email
	profile.Nickname = f.Nickname

	return profile
}
