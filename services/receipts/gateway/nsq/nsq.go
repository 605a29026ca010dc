package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	nsqpkg "github.com/piresc/freightdesk/internal/pkg/nsq"
)

// NSQGateway publishes receipt events to NSQ
type NSQGateway struct {
	publisher nsqpkg.Publisher
}

// NewNSQGateway creates a new NSQ gateway instance
func NewNSQGateway(publisher nsqpkg.Publisher) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
	}
}

// PublishReceiptAssigned announces that a comprovante was attached to its target
func (g *NSQGateway) PublishReceiptAssigned(ctx context.Context, event models.ReceiptAssignedEvent) error {
	if err := g.publisher.Publish(ctx, constants.TopicReceiptAssigned, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish receipt assigned event",
			logger.String("pool", string(event.Pool)),
			logger.Int64("receipt_id", event.ReceiptID),
			logger.Int64("target_id", event.TargetID),
			logger.Err(err))
		return fmt.Errorf("failed to publish receipt assigned event: %w", err)
	}

	logger.InfoCtx(ctx, "Published receipt assigned event",
		logger.String("pool", string(event.Pool)),
		logger.Int64("receipt_id", event.ReceiptID),
		logger.Int64("target_id", event.TargetID))
	return nil
}
