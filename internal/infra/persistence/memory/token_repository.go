package memory

import (
	"context"
	"sync"

	"authgate/internal/domain/repository"
)

// TokenRepository keeps bearer tokens in process memory. Tokens are lost on restart.
type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

var _ repository.TokenRepository = (*TokenRepository)(nil)

// NewTokenRepository creates an empty token store.
func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[string]string)}
}

func (r *TokenRepository) FindToken(_ context.Context, clientID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[clientID]
	if !ok {
		return "", repository.ErrTokenNotFound
	}

	return token, nil
}

func (r *TokenRepository) SaveToken(_ context.Context, clientID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[clientID] = token

	return nil
}

func (r *TokenRepository) DeleteToken(_ context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, clientID)

	return nil
}
