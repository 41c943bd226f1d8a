package pubsub

import (
	"context"
	"log/slog"

	"authgate/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googleSyncer struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleSyncer publishes to an existing topic. Messages are ordered per user
// so a consumer never applies an older sync after a newer one.
func NewGoogleSyncer(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EntitlementSyncer, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub entitlement syncer ready", slog.String("topic", topic))

	return &googleSyncer{client: client, publisher: publisher, logger: logger}, nil
}

func (s *googleSyncer) SyncEntitlements(ctx context.Context, event *service.EntitlementSyncEvent) error {
	data, attrs, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attrs,
		OrderingKey: event.UserID,
	})

	id, err := result.Get(ctx)
	if err != nil {
		// a failed publish pauses the ordering key until resumed
		s.publisher.ResumePublish(event.UserID)

		return errors.Wrap(err, "publish entitlement sync")
	}

	s.logger.Debug("Entitlement sync published",
		slog.String("user_id", event.UserID),
		slog.String("message_id", id),
	)

	return nil
}

func (s *googleSyncer) Close() error {
	s.publisher.Stop()

	return errors.WithStack(s.client.Close())
}
