package freights

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/freights FreightRepo

// FreightRepo persists freights
type FreightRepo interface {
	Create(ctx context.Context, freight *models.Freight) error
	Update(ctx context.Context, freight *models.Freight) error
	SetClientPaid(ctx context.Context, id int64, paid bool) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Freight, error)
	List(ctx context.Context, filter models.FreightFilter) ([]*models.Freight, error)

	// DriverRate returns the driver's current price per km·ton, or
	// ErrNotFound when the driver does not exist
	DriverRate(ctx context.Context, driverID int64) (decimal.Decimal, error)
}
