package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	nsqpkg "github.com/piresc/freightdesk/internal/pkg/nsq"
)

// NSQGateway publishes payment events to NSQ
type NSQGateway struct {
	publisher nsqpkg.Publisher
}

// NewNSQGateway creates a new NSQ gateway instance
func NewNSQGateway(publisher nsqpkg.Publisher) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
	}
}

// PublishPaymentCreated announces a new settlement
func (g *NSQGateway) PublishPaymentCreated(ctx context.Context, event models.PaymentEvent) error {
	return g.publish(ctx, constants.TopicPaymentCreated, event)
}

// PublishPaymentDeleted announces a reverted settlement
func (g *NSQGateway) PublishPaymentDeleted(ctx context.Context, event models.PaymentEvent) error {
	return g.publish(ctx, constants.TopicPaymentDeleted, event)
}

func (g *NSQGateway) publish(ctx context.Context, topic string, event models.PaymentEvent) error {
	if err := g.publisher.Publish(ctx, topic, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish payment event",
			logger.String("topic", topic),
			logger.Int64("payment_id", event.PaymentID),
			logger.Int64("driver_id", event.DriverID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}

	logger.InfoCtx(ctx, "Published payment event",
		logger.String("topic", topic),
		logger.Int64("payment_id", event.PaymentID),
		logger.Int64("driver_id", event.DriverID))
	return nil
}
