package model

import "time"

// ClientTokenModel mirrors the 'client_tokens' table. One bearer token per client cookie.
type ClientTokenModel struct {
	ClientID  string `gorm:"type:varchar(64);primaryKey"`
	Token     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientTokenModel) TableName() string {
	return "client_tokens"
}
