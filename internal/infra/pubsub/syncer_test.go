package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/constants"
	"authgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPSyncer_PushesEnvelope(t *testing.T) {
	var got PushMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-9", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	syncer := NewLocalHTTPSyncer(srv.URL, discardLogger())
	event := &service.EntitlementSyncEvent{
		RequestID:  "req-9",
		UserID:     "u1",
		Reason:     constants.SyncReasonLogin,
		OccurredAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, syncer.SyncEntitlements(context.Background(), event))

	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, "u1", got.Message.Attributes["user_id"])
	assert.Equal(t, "login", got.Message.Attributes["reason"])
	assert.NotEmpty(t, got.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.EntitlementSyncEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "u1", decoded.UserID)
}

func TestLocalHTTPSyncer_NonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPSyncer(srv.URL, discardLogger()).
		SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u1"})
	assert.ErrorContains(t, err, "503")
}

func TestEncodeEvent(t *testing.T) {
	_, _, err := encodeEvent(&service.EntitlementSyncEvent{Reason: "login"})
	assert.Error(t, err)

	data, attrs, err := encodeEvent(&service.EntitlementSyncEvent{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user_id": "u1"}, attrs)
	assert.Contains(t, string(data), `"u1"`)
}

func TestLocalHTTPSyncer_RejectsEventWithoutUser(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	err := NewLocalHTTPSyncer(srv.URL, discardLogger()).
		SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestNewEntitlementSyncer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			syncer, err := NewEntitlementSyncer(SyncerParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, syncer)
			if tt.cfg == nil {
				assert.NoError(t, syncer.SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u1"}))
			}
		})
	}
}
