package consumer

import (
	"context"
	"encoding/json"

	"go-skills/internal/analytics"
	"go-skills/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEvaluationLifecycle drops the cached analytics views whenever an
// evaluation changes, so the next dashboard read recomputes from Postgres.
func ConsumeEvaluationLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.evaluation_lifecycle")
	log.Info("evaluation lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("evaluation lifecycle consumer stopped")
				return
			}
			log.Error("fetch evaluation lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EvaluationChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode evaluation event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := rdb.Del(ctx, analytics.AllCacheKeys()...).Err(); err != nil {
			log.Error("invalidate analytics cache failed",
				zap.String("evaluation_id", event.EvaluationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit evaluation lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("analytics cache invalidated from evaluation event",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.String("evaluation_id", event.EvaluationID),
		)
	}
}
