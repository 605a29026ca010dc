package drivers

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/drivers DriverUC

// DriverUC represents the driver usecase interface
type DriverUC interface {
	CreateDriver(ctx context.Context, req *models.DriverRequest) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id int64, req *models.DriverRequest) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id int64) error
	GetDriver(ctx context.Context, id int64) (*models.Driver, error)
	ListDrivers(ctx context.Context, filter models.DriverFilter) ([]*models.Driver, error)

	// ledger views, recomputed on every call
	GetBalance(ctx context.Context, driverID int64) (*models.DriverBalance, error)
	GetStats(ctx context.Context, driverID int64) (*models.DriverStats, error)
	GetProfile(ctx context.Context, driverID int64) (*models.DriverProfile, error)
}
