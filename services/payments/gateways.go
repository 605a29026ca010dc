package payments

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/freightdesk/services/payments PaymentGW

// PaymentGW publishes settlement events
type PaymentGW interface {
	PublishPaymentCreated(ctx context.Context, event models.PaymentEvent) error
	PublishPaymentDeleted(ctx context.Context, event models.PaymentEvent) error
}
