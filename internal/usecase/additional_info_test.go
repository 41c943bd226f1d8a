package usecase

import (
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAdditionalInfoForm_Validate(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name      string
		form      AdditionalInfoForm
		min       int
		wantErr   bool
		wantField string
	}{
		{name: "valid", form: AdditionalInfoForm{Email: "a@b.com", Nickname: "Jo"}},
		{name: "nickname too short", form: AdditionalInfoForm{Email: "a@b.com", Nickname: "J"}, wantErr: true, wantField: "nickname"},
		{name: "whitespace padded nickname", form: AdditionalInfoForm{Email: "a@b.com", Nickname: "  J  "}, wantErr: true, wantField: "nickname"},
		{name: "korean nickname counts runes", form: AdditionalInfoForm{Email: "a@b.com", Nickname: "라이"}},
		{name: "bad email", form: AdditionalInfoForm{Email: "not-an-email", Nickname: "Neo"}, wantErr: true, wantField: "email"},
		{name: "empty email", form: AdditionalInfoForm{Nickname: "Neo"}, wantErr: true, wantField: "email"},
		{name: "custom minimum", form: AdditionalInfoForm{Email: "a@b.com", Nickname: "Neo"}, min: 4, wantErr: true, wantField: "nickname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := tt.form
			form.Normalize()

			err := form.Validate(v, tt.min)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestAdditionalInfoForm_PrefillAndApply(t *testing.T) {
	profile := entity.ProviderProfile{ID: "42", Nickname: "Jo", AvatarURL: "https://img"}

	form := NewAdditionalInfoForm(profile)
	assert.Equal(t, "", form.Email)
	assert.Equal(t, "Jo", form.Nickname)

	form.Email = "jo@x.com"
	merged := form.Apply(profile)
	assert.Equal(t, entity.ProviderProfile{ID: "42", Nickname: "Jo", Email: "jo@x.com", AvatarURL: "https://img"}, merged)
}
