package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/infra/persistence/memory"
	mockService "authgate/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Frontend: &config.FrontendConfig{
			BaseURL:            "https://app.example.com",
			HomePath:           "/",
			AdditionalInfoPath: "/auth/additional-info",
		},
		Callback: &config.CallbackConfig{
			MarkerTTL:         30 * time.Minute,
			StateTTL:          10 * time.Minute,
			PendingTTL:        30 * time.Minute,
			NicknameMinLength: 2,
			SyncTimeout:       time.Second,
		},
	}
}

type sessionFixture struct {
	srv       *sessionService
	backend   *mockService.MockBackendGateway
	inspector *mockService.MockTokenInspector
	syncer    *mockService.MockEntitlementSyncer
	tokens    *memory.TokenRepository
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		backend:   mockService.NewMockBackendGateway(t),
		inspector: mockService.NewMockTokenInspector(t),
		syncer:    mockService.NewMockEntitlementSyncer(t),
		tokens:    memory.NewTokenRepository(),
	}
	f.srv = newSessionService(SessionServiceParams{
		Backend:   f.backend,
		Tokens:    f.tokens,
		Inspector: f.inspector,
		Syncer:    f.syncer,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	// Runs before the mocks assert their expectations.
	t.Cleanup(f.srv.syncWG.Wait)

	return f
}

func (f *sessionFixture) allowSync() {
	f.syncer.EXPECT().SyncEntitlements(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func testSession(userID, token string) *entity.AuthSession {
	return &entity.AuthSession{
		User:  &entity.User{ID: userID, Email: userID + "@example.com", DisplayName: "User " + userID},
		Token: token,
	}
}
