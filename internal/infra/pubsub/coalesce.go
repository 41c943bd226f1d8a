package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"authgate/internal/domain/service"
)

// coalescingSyncer drops a sync for a user already synced within the window.
// A login is usually followed by a rehydrate on the next page load; the purchase
// subsystem only needs one of them. Failed syncs are forgotten so the next one goes out.
type coalescingSyncer struct {
	next   service.EntitlementSyncer
	window time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu   sync.Mutex
	sent map[string]time.Time
}

func newCoalescingSyncer(next service.EntitlementSyncer, window time.Duration, now func() time.Time, logger *slog.Logger) *coalescingSyncer {
	return &coalescingSyncer{
		next:   next,
		window: window,
		now:    now,
		logger: logger,
		sent:   make(map[string]time.Time),
	}
}

func (s *coalescingSyncer) SyncEntitlements(ctx context.Context, event *service.EntitlementSyncEvent) error {
	if !s.claim(event.UserID) {
		s.logger.Debug("Entitlement sync coalesced",
			slog.String("user_id", event.UserID),
			slog.String("reason", event.Reason),
		)

		return nil
	}

	if err := s.next.SyncEntitlements(ctx, event); err != nil {
		s.forget(event.UserID)

		return err
	}

	return nil
}

func (s *coalescingSyncer) claim(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, at := range s.sent {
		if now.Sub(at) >= s.window {
			delete(s.sent, id)
		}
	}

	if _, ok := s.sent[userID]; ok {
		return false
	}
	s.sent[userID] = now

	return true
}

func (s *coalescingSyncer) forget(userID string) {
	s.mu.Lock()
	delete(s.sent, userID)
	s.mu.Unlock()
}

func (s *coalescingSyncer) Close() error {
	return s.next.Close()
}
