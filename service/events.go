package service

import (
	"context"
	"time"

	"tipovacka/client"
	"tipovacka/logger"
	"tipovacka/metrics"

	"github.com/google/uuid"
)

// publish never fails the calling operation. Errors are logged and counted.
func publish(ctx context.Context, publisher client.EventPublisher, reason client.PointsChangeReason, matchId *int, eventId *int, userIds []uuid.UUID) {
	if publisher == nil {
		return
	}
	event := &client.PointsChangedEvent{
		Reason:    reason,
		MatchID:   matchId,
		EventID:   eventId,
		UserIDs:   userIds,
		Timestamp: time.Now(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		metrics.PublishErrorCounter.Inc()
		logger.WithService("events").WithError(err).WithField("reason", reason).Warn("failed to publish points change")
	}
}
