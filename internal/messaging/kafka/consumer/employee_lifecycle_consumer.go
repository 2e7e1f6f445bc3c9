package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go-bizledger/internal/employee"
	"go-bizledger/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle drops the cached employee options for a company
// whenever any API instance records an employee change. Local invalidation in
// the service only covers the instance that handled the write.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("unmarshal employee event failed",
				zap.String("topic", msg.Topic),
				zap.Error(err),
			)
			// Poison message, commit and move on
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		key := employee.OptionsCacheKey(event.CompanyID)
		if err := rdb.Del(ctx, key).Err(); err != nil {
			log.Error("invalidate options cache failed",
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue // retry on next fetch, offset not committed
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
			continue
		}

		log.Info("options cache invalidated",
			zap.String("company_id", event.CompanyID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}
