package receipts

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/receipts ReceiptRepo

// ReceiptRepo persists the comprovante pools
type ReceiptRepo interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	ListUnassigned(ctx context.Context, pool models.ReceiptPool) ([]*models.Receipt, error)
	ListByDriver(ctx context.Context, pool models.ReceiptPool, driverID int64) ([]*models.Receipt, error)
	// Assign claims an unassigned receipt for the target and copies its file
	// onto the target in one transaction
	Assign(ctx context.Context, pool models.ReceiptPool, receiptID int64, targetID int64) (*models.Receipt, error)
	// Unassign releases every receipt pointing at the target and clears the
	// target's file column in one transaction
	Unassign(ctx context.Context, pool models.ReceiptPool, targetID int64) ([]*models.Receipt, error)
	// Delete removes an unassigned receipt and returns it
	Delete(ctx context.Context, pool models.ReceiptPool, id int64) (*models.Receipt, error)
}
