package service

import (
	"context"
	"time"
)

// EntitlementSyncEvent asks the purchase subsystem to refresh a user's entitlements.
type EntitlementSyncEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     string    `json:"user_id"`
	Reason     string    `json:"reason"` // login or rehydrate
	OccurredAt time.Time `json:"occurred_at"`
}

// EntitlementSyncer publishes entitlement sync requests. Callers treat failures as best effort.
type EntitlementSyncer interface {
	SyncEntitlements(ctx context.Context, event *EntitlementSyncEvent) error

	// Close releases any resources held by the syncer
	Close() error
}
