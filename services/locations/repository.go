package locations

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/locations LocationRepo

// LocationRepo stores the latest fix of every driver
type LocationRepo interface {
	Upsert(ctx context.Context, loc *models.DriverLocation) error
	Get(ctx context.Context, driverID int64) (*models.DriverLocation, error)
	ListAll(ctx context.Context) ([]*models.DriverLocation, error)
	ListForClient(ctx context.Context, clientID int64) ([]*models.DriverLocation, error)
	// FreightDriver returns the driver a freight belongs to
	FreightDriver(ctx context.Context, freightID int64) (int64, error)
}
