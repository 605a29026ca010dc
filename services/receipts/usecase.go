package receipts

import (
	"context"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/receipts ReceiptUC

// ReceiptUC represents the receipt pool usecase interface
type ReceiptUC interface {
	SubmitReceipt(ctx context.Context, pool models.ReceiptPool, driverID int64, date models.Date, file io.Reader) (*models.Receipt, error)
	ListUnassigned(ctx context.Context, pool models.ReceiptPool) ([]*models.Receipt, error)
	ListOwn(ctx context.Context, pool models.ReceiptPool, driverID int64) ([]*models.Receipt, error)
	AssignReceipt(ctx context.Context, pool models.ReceiptPool, receiptID int64, targetID int64) (*models.Receipt, error)
	UnassignReceipt(ctx context.Context, pool models.ReceiptPool, targetID int64) error
	DeleteReceipt(ctx context.Context, pool models.ReceiptPool, id int64) error
}
