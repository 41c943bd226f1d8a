package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/entitlement-sync"
	localPushTimeout  = 5 * time.Second
)

// PushMessage mirrors the body Pub/Sub sends to push subscriptions,
// so a local consumer can be exercised without the emulator.
type PushMessage struct {
	Message      PushPayload `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushPayload struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func newPushMessage(data []byte, attrs map[string]string, at time.Time) PushMessage {
	return PushMessage{
		Subscription: localSubscription,
		Message: PushPayload{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attrs,
			MessageID:   uuid.NewString(),
			PublishTime: at.UTC().Format(time.RFC3339Nano),
		},
	}
}

type localHTTPSyncer struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPSyncer pushes sync requests straight to a consumer's push endpoint.
func NewLocalHTTPSyncer(endpoint string, logger *slog.Logger) service.EntitlementSyncer {
	return &localHTTPSyncer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (s *localHTTPSyncer) SyncEntitlements(ctx context.Context, event *service.EntitlementSyncEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushMessage(data, attrs, time.Now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push entitlement sync")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("entitlement push endpoint answered %d", resp.StatusCode)
	}

	s.logger.Debug("Entitlement sync pushed", slog.String("user_id", event.UserID))

	return nil
}

func (s *localHTTPSyncer) Close() error {
	s.client.CloseIdleConnections()

	return nil
}
