package payments

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/payments PaymentRepo

// PaymentRepo persists settlements together with the paid flags they own
type PaymentRepo interface {
	// Create locks every referenced row, checks it exists, belongs to the
	// driver and is unpaid, inserts the payment and flags the rows paid,
	// all in one transaction. With deriveTotal the payment total is the sum
	// of the referenced rows.
	Create(ctx context.Context, payment *models.Payment, deriveTotal bool) error
	// Delete reverts the paid flags and removes the payment in one transaction
	Delete(ctx context.Context, id int64) (*models.Payment, error)
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	List(ctx context.Context, driverID *int64) ([]*models.Payment, error)
	Lines(ctx context.Context, payment *models.Payment) ([]*models.SettlementLine, error)
}
