package receipts

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/freightdesk/services/receipts ReceiptGW

// ReceiptGW publishes receipt events
type ReceiptGW interface {
	PublishReceiptAssigned(ctx context.Context, event models.ReceiptAssignedEvent) error
}
