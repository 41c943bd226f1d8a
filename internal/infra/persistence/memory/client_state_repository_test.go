package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestStore() (*ClientStateRepository, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	return newClientStateRepository(30*time.Minute, 10*time.Minute, 30*time.Minute, clock.Now), clock
}

func TestClientState_ProcessedCode(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	code, err := store.ProcessedCode(ctx, "c1", entity.ProviderTypeKakao)
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, store.MarkCodeProcessed(ctx, "c1", entity.ProviderTypeKakao, "abc123"))

	code, _ = store.ProcessedCode(ctx, "c1", entity.ProviderTypeKakao)
	assert.Equal(t, "abc123", code)

	// Markers are scoped by client and provider.
	code, _ = store.ProcessedCode(ctx, "c2", entity.ProviderTypeKakao)
	assert.Empty(t, code)
	code, _ = store.ProcessedCode(ctx, "c1", entity.ProviderTypeNaver)
	assert.Empty(t, code)

	clock.Advance(31 * time.Minute)
	code, _ = store.ProcessedCode(ctx, "c1", entity.ProviderTypeKakao)
	assert.Empty(t, code)
}

func TestClientState_ConsumeStateNonce(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	require.NoError(t, store.SaveStateNonce(ctx, "c1", entity.ProviderTypeNaver, "n-1"))

	nonce, err := store.ConsumeStateNonce(ctx, "c1", entity.ProviderTypeNaver)
	require.NoError(t, err)
	assert.Equal(t, "n-1", nonce)

	nonce, _ = store.ConsumeStateNonce(ctx, "c1", entity.ProviderTypeNaver)
	assert.Empty(t, nonce, "a nonce can be consumed once")

	require.NoError(t, store.SaveStateNonce(ctx, "c1", entity.ProviderTypeNaver, "n-2"))
	clock.Advance(11 * time.Minute)
	nonce, _ = store.ConsumeStateNonce(ctx, "c1", entity.ProviderTypeNaver)
	assert.Empty(t, nonce)
}

func TestClientState_PendingProfile(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	_, err := store.FindPendingProfile(ctx, "c1", entity.ProviderTypeKakao)
	assert.ErrorIs(t, err, repository.ErrPendingProfileNotFound)

	pending := &entity.PendingProfile{
		Provider:       entity.ProviderTypeKakao,
		Profile:        entity.ProviderProfile{ID: "42", Nickname: "라이언"},
		TemporaryToken: "kakao-temp",
	}
	require.NoError(t, store.SavePendingProfile(ctx, "c1", pending))

	pending.Profile.Nickname = "mutated"

	found, err := store.FindPendingProfile(ctx, "c1", entity.ProviderTypeKakao)
	require.NoError(t, err)
	assert.Equal(t, "라이언", found.Profile.Nickname)
	assert.Equal(t, "kakao-temp", found.TemporaryToken)

	require.NoError(t, store.DeletePendingProfile(ctx, "c1", entity.ProviderTypeKakao))
	require.NoError(t, store.DeletePendingProfile(ctx, "c1", entity.ProviderTypeKakao))

	_, err = store.FindPendingProfile(ctx, "c1", entity.ProviderTypeKakao)
	assert.ErrorIs(t, err, repository.ErrPendingProfileNotFound)
}

func TestClientState_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore()

	require.NoError(t, store.SaveStateNonce(ctx, "c1", entity.ProviderTypeApple, "n"))
	require.NoError(t, store.MarkCodeProcessed(ctx, "c1", entity.ProviderTypeApple, "code"))
	require.NoError(t, store.SavePendingProfile(ctx, "c1", &entity.PendingProfile{Provider: entity.ProviderTypeApple}))

	assert.Equal(t, 0, store.Sweep())

	clock.Advance(15 * time.Minute)
	assert.Equal(t, 1, store.Sweep())

	clock.Advance(time.Hour)
	assert.Equal(t, 2, store.Sweep())
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository()

	_, err := repo.FindToken(ctx, "c1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, repo.SaveToken(ctx, "c1", "jwt-1"))
	require.NoError(t, repo.SaveToken(ctx, "c1", "jwt-2"))

	token, err := repo.FindToken(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-2", token)

	require.NoError(t, repo.DeleteToken(ctx, "c1"))
	require.NoError(t, repo.DeleteToken(ctx, "c1"))

	_, err = repo.FindToken(ctx, "c1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
