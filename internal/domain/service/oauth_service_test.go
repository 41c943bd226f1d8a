package service

import (
	"testing"

	"authgate/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Gildong Hong", DisplayName("Gildong", "Hong"))
	assert.Equal(t, "Hong", DisplayName("", "Hong"))
	assert.Equal(t, "", DisplayName(" ", ""))
}

func TestProviderGrant_FillName(t *testing.T) {
	tests := []struct {
		name         string
		grant        ProviderGrant
		given        string
		family       string
		wantNickname string
		wantGiven    string
	}{
		{
			name:         "fills empty grant and nickname",
			grant:        ProviderGrant{Profile: entity.ProviderProfile{ID: "001"}},
			given:        "Bob",
			family:       "Lee",
			wantNickname: "Bob Lee",
			wantGiven:    "Bob",
		},
		{
			name:         "keeps provider nickname",
			grant:        ProviderGrant{Profile: entity.ProviderProfile{Nickname: "bobby"}},
			given:        "Bob",
			family:       "Lee",
			wantNickname: "bobby",
			wantGiven:    "Bob",
		},
		{
			name:         "keeps names already on the grant",
			grant:        ProviderGrant{GivenName: "Tim"},
			given:        "Bob",
			family:       "Lee",
			wantNickname: "Tim",
			wantGiven:    "Tim",
		},
		{
			name:         "nothing reported",
			grant:        ProviderGrant{},
			wantNickname: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grant := tt.grant
			grant.FillName(tt.given, tt.family)

			assert.Equal(t, tt.wantNickname, grant.Profile.Nickname)
			assert.Equal(t, tt.wantGiven, grant.GivenName)
		})
	}
}
