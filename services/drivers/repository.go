package drivers

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/drivers DriverRepo

// DriverRepo persists drivers and aggregates their ledger rows
type DriverRepo interface {
	Create(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, driver *models.Driver) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	List(ctx context.Context, filter models.DriverFilter) ([]*models.Driver, error)
	Balance(ctx context.Context, driverID int64) (*models.DriverBalance, error)
	Stats(ctx context.Context, driverID int64) (*models.DriverStats, error)
}
