package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	nsqpkg "github.com/piresc/freightdesk/internal/pkg/nsq"
)

// NSQGateway publishes location events to NSQ
type NSQGateway struct {
	publisher nsqpkg.Publisher
}

// NewNSQGateway creates a new NSQ gateway instance
func NewNSQGateway(publisher nsqpkg.Publisher) *NSQGateway {
	return &NSQGateway{
		publisher: publisher,
	}
}

// PublishLocationUpdated fans a driver's new fix out to tracking consumers
func (g *NSQGateway) PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error {
	if err := g.publisher.Publish(ctx, constants.TopicLocationUpdated, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish location update",
			logger.Int64("driver_id", event.DriverID),
			logger.String("geohash", event.Geohash),
			logger.Err(err))
		return fmt.Errorf("failed to publish location update: %w", err)
	}
	return nil
}
