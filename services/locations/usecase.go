package locations

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/locations LocationUC

// LocationUC represents the driver location usecase interface
type LocationUC interface {
	UpdateLocation(ctx context.Context, driverID int64, update *models.LocationUpdate) (*models.DriverLocation, error)
	GetLocation(ctx context.Context, driverID int64) (*models.DriverLocation, error)
	ListLocations(ctx context.Context) ([]*models.DriverLocation, error)
	ListClientLocations(ctx context.Context, clientID int64) ([]*models.DriverLocation, error)
}
