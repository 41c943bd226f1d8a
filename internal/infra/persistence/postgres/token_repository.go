// Package postgres contains the durable token store on GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// FindToken retrieves the bearer token persisted for a client.
func (repo *tokenRepository) FindToken(ctx context.Context, clientID string) (string, error) {
	var tokenM model.ClientTokenModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrTokenNotFound
		}

		return "", errors.WithStack(err)
	}

	return tokenM.Token, nil
}

// SaveToken upserts the client's token.
func (repo *tokenRepository) SaveToken(ctx context.Context, clientID, token string) error {
	now := time.Now()
	tokenM := &model.ClientTokenModel{
		ClientID:  clientID,
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing client token")
		}
		if isConnectionFailure(err) {
			return domainerrors.NewDatabaseExecuteError(err, "token store unreachable")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save client token")
	}

	return nil
}

// DeleteToken removes the client's token; deleting nothing is not an error.
func (repo *tokenRepository) DeleteToken(ctx context.Context, clientID string) error {
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.ClientTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete client token")
	}

	return nil
}
