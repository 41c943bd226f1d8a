package pubsub

import (
	"context"
	"testing"
	"time"

	"authgate/internal/domain/service"
	mockService "authgate/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestCoalescingSyncer_DropsRepeatWithinWindow(t *testing.T) {
	next := mockService.NewMockEntitlementSyncer(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newCoalescingSyncer(next, time.Minute, clock.now, discardLogger())

	next.EXPECT().SyncEntitlements(mock.Anything, mock.Anything).Return(nil).Times(2)

	ctx := context.Background()
	assert.NoError(t, s.SyncEntitlements(ctx, &service.EntitlementSyncEvent{UserID: "u1", Reason: "login"}))
	assert.NoError(t, s.SyncEntitlements(ctx, &service.EntitlementSyncEvent{UserID: "u1", Reason: "rehydrate"}))

	clock.advance(time.Minute)
	assert.NoError(t, s.SyncEntitlements(ctx, &service.EntitlementSyncEvent{UserID: "u1", Reason: "rehydrate"}))
}

func TestCoalescingSyncer_UsersAreIndependent(t *testing.T) {
	next := mockService.NewMockEntitlementSyncer(t)
	clock := &fakeClock{t: time.Now()}
	s := newCoalescingSyncer(next, time.Minute, clock.now, discardLogger())

	next.EXPECT().SyncEntitlements(mock.Anything, mock.Anything).Return(nil).Times(2)

	assert.NoError(t, s.SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u1"}))
	assert.NoError(t, s.SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u2"}))
}

func TestCoalescingSyncer_FailureIsRetried(t *testing.T) {
	next := mockService.NewMockEntitlementSyncer(t)
	clock := &fakeClock{t: time.Now()}
	s := newCoalescingSyncer(next, time.Minute, clock.now, discardLogger())

	next.EXPECT().SyncEntitlements(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	next.EXPECT().SyncEntitlements(mock.Anything, mock.Anything).Return(nil).Once()

	assert.ErrorIs(t, s.SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u1"}), assert.AnError)
	assert.NoError(t, s.SyncEntitlements(context.Background(), &service.EntitlementSyncEvent{UserID: "u1"}))
}

func TestCoalescingSyncer_CloseDelegates(t *testing.T) {
	next := mockService.NewMockEntitlementSyncer(t)
	next.EXPECT().Close().Return(nil)

	assert.NoError(t, newCoalescingSyncer(next, time.Minute, time.Now, discardLogger()).Close())
}
