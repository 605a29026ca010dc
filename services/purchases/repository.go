package purchases

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/purchases PurchaseRepo

// PurchaseRepo persists abastecimentos and outros insumos. Every call is
// routed to the table of the given kind.
type PurchaseRepo interface {
	Create(ctx context.Context, p *models.Purchase) error
	Update(ctx context.Context, p *models.Purchase) error
	Delete(ctx context.Context, kind models.PurchaseKind, id int64) error
	GetByID(ctx context.Context, kind models.PurchaseKind, id int64) (*models.Purchase, error)
	List(ctx context.Context, kind models.PurchaseKind, filter models.PurchaseFilter) ([]*models.Purchase, error)
}
