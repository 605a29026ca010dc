package purchases

import (
	"context"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/purchases PurchaseUC

// PurchaseUC represents the purchase usecase interface
type PurchaseUC interface {
	// CreatePurchase is used by admins (abastecedorID nil) and abastecedores
	CreatePurchase(ctx context.Context, kind models.PurchaseKind, abastecedorID *int64, req *models.PurchaseRequest, receipt io.Reader) (*models.Purchase, error)
	SubmitPurchase(ctx context.Context, kind models.PurchaseKind, driverID int64, date models.Date, receipt io.Reader) (*models.Purchase, error)
	UpdatePurchase(ctx context.Context, kind models.PurchaseKind, id int64, req *models.PurchaseRequest) (*models.Purchase, error)
	DeletePurchase(ctx context.Context, kind models.PurchaseKind, id int64) error
	GetPurchase(ctx context.Context, kind models.PurchaseKind, id int64) (*models.Purchase, error)
	ListPurchases(ctx context.Context, kind models.PurchaseKind, filter models.PurchaseFilter) ([]*models.Purchase, error)
}
