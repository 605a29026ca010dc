package locations

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/freightdesk/services/locations LocationGW

// LocationGW publishes location events
type LocationGW interface {
	PublishLocationUpdated(ctx context.Context, event models.LocationEvent) error
}
