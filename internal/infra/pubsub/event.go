package pubsub

import (
	"encoding/json"

	"authgate/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the JSON payload and routing attributes for a sync request.
// Messages carry no tokens; the consumer looks the user up by ID.
func encodeEvent(event *service.EntitlementSyncEvent) ([]byte, map[string]string, error) {
	if event == nil || event.UserID == "" {
		return nil, nil, errors.New("entitlement sync event requires a user ID")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attrs := map[string]string{"user_id": event.UserID}
	if event.Reason != "" {
		attrs["reason"] = event.Reason
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return data, attrs, nil
}
