package freights

import (
	"context"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/freights FreightUC

// FreightUC represents the freight usecase interface
type FreightUC interface {
	CreateFreight(ctx context.Context, req *models.FreightRequest) (*models.Freight, error)
	SubmitFreight(ctx context.Context, driverID int64, date models.Date, loadingReceipt io.Reader) (*models.Freight, error)
	UpdateFreight(ctx context.Context, id int64, req *models.FreightRequest) (*models.Freight, error)
	SetClientPaid(ctx context.Context, id int64, paid bool) (*models.Freight, error)
	DeleteFreight(ctx context.Context, id int64) error
	GetFreight(ctx context.Context, id int64) (*models.Freight, error)
	ListFreights(ctx context.Context, filter models.FreightFilter) ([]*models.Freight, error)
}
