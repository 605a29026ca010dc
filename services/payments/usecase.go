package payments

import (
	"context"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/payments PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	CreatePayment(ctx context.Context, req *models.PaymentRequest, proof io.Reader) (*models.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	GetPayment(ctx context.Context, id int64) (*models.Payment, error)
	ListPayments(ctx context.Context, driverID *int64) ([]*models.Payment, error)

	// Statement renders the payment and its rows as an XLSX workbook
	Statement(ctx context.Context, id int64) ([]byte, error)
}
