// Package memory holds in-process implementations of the client storage contracts.
package memory

import (
	"context"
	"sync"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	"authgate/internal/errors"
)

type stateKey struct {
	clientID string
	provider entity.ProviderType
}

type expiring[T any] struct {
	value     T
	expiresAt time.Time
}

func (e expiring[T]) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// ClientStateRepository keeps session-scoped client state in memory with per-entry TTLs.
type ClientStateRepository struct {
	mu sync.Mutex

	markerTTL  time.Duration
	stateTTL   time.Duration
	pendingTTL time.Duration

	codes   map[stateKey]expiring[string]
	nonces  map[stateKey]expiring[string]
	pending map[stateKey]expiring[entity.PendingProfile]

	now func() time.Time
}

var _ repository.ClientStateRepository = (*ClientStateRepository)(nil)

// NewClientStateRepository builds the store with the TTLs from the callback configuration.
func NewClientStateRepository(cfg *config.Config) *ClientStateRepository {
	return newClientStateRepository(cfg.Callback.MarkerTTL, cfg.Callback.StateTTL, cfg.Callback.PendingTTL, time.Now)
}

func newClientStateRepository(markerTTL, stateTTL, pendingTTL time.Duration, now func() time.Time) *ClientStateRepository {
	return &ClientStateRepository{
		markerTTL:  markerTTL,
		stateTTL:   stateTTL,
		pendingTTL: pendingTTL,
		codes:      make(map[stateKey]expiring[string]),
		nonces:     make(map[stateKey]expiring[string]),
		pending:    make(map[stateKey]expiring[entity.PendingProfile]),
		now:        now,
	}
}

func (r *ClientStateRepository) ProcessedCode(_ context.Context, clientID string, provider entity.ProviderType) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stateKey{clientID, provider}
	entry, ok := r.codes[key]
	if !ok {
		return "", nil
	}
	if entry.expired(r.now()) {
		delete(r.codes, key)
		return "", nil
	}

	return entry.value, nil
}

func (r *ClientStateRepository) MarkCodeProcessed(_ context.Context, clientID string, provider entity.ProviderType, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[stateKey{clientID, provider}] = expiring[string]{value: code, expiresAt: r.now().Add(r.markerTTL)}

	return nil
}

func (r *ClientStateRepository) SaveStateNonce(_ context.Context, clientID string, provider entity.ProviderType, nonce string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nonces[stateKey{clientID, provider}] = expiring[string]{value: nonce, expiresAt: r.now().Add(r.stateTTL)}

	return nil
}

func (r *ClientStateRepository) ConsumeStateNonce(_ context.Context, clientID string, provider entity.ProviderType) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stateKey{clientID, provider}
	entry, ok := r.nonces[key]
	if !ok {
		return "", nil
	}
	delete(r.nonces, key)
	if entry.expired(r.now()) {
		return "", nil
	}

	return entry.value, nil
}

func (r *ClientStateRepository) SavePendingProfile(_ context.Context, clientID string, pending *entity.PendingProfile) error {
	if pending == nil {
		return errors.New("pending profile is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[stateKey{clientID, pending.Provider}] = expiring[entity.PendingProfile]{
		value:     *pending,
		expiresAt: r.now().Add(r.pendingTTL),
	}

	return nil
}

func (r *ClientStateRepository) FindPendingProfile(_ context.Context, clientID string, provider entity.ProviderType) (*entity.PendingProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := stateKey{clientID, provider}
	entry, ok := r.pending[key]
	if !ok {
		return nil, repository.ErrPendingProfileNotFound
	}
	if entry.expired(r.now()) {
		delete(r.pending, key)
		return nil, repository.ErrPendingProfileNotFound
	}

	pending := entry.value

	return &pending, nil
}

func (r *ClientStateRepository) DeletePendingProfile(_ context.Context, clientID string, provider entity.ProviderType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pending, stateKey{clientID, provider})

	return nil
}

// Sweep drops every expired entry and reports how many were removed.
func (r *ClientStateRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	return sweep(r.codes, now) + sweep(r.nonces, now) + sweep(r.pending, now)
}

func sweep[T any](items map[stateKey]expiring[T], now time.Time) int {
	removed := 0
	for key, entry := range items {
		if entry.expired(now) {
			delete(items, key)
			removed++
		}
	}

	return removed
}
