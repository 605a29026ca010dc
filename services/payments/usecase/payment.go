package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/storage"
	"github.com/piresc/freightdesk/services/payments"
)

// PaymentUC implements payments.PaymentUC
type PaymentUC struct {
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	store       storage.FileStore
	cfg         *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
	store storage.FileStore,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		store:       store,
		cfg:         cfg,
	}
}

// CreatePayment settles a driver's rows. The proof is optional; when the
// total is omitted it is the sum of the referenced rows.
func (uc *PaymentUC) CreatePayment(ctx context.Context, req *models.PaymentRequest, proof io.Reader) (*models.Payment, error) {
	if req == nil || req.DriverID <= 0 {
		return nil, models.NewValidationError("driver_id is required")
	}
	if strings.TrimSpace(req.DateRange) == "" {
		return nil, models.NewValidationError("date_range is required")
	}
	if req.Empty() {
		return nil, models.NewValidationError("a payment must reference at least one row")
	}
	if req.TotalValue != nil && req.TotalValue.IsNegative() {
		return nil, models.NewValidationError("total_value must not be negative")
	}

	p := &models.Payment{
		DriverID:  req.DriverID,
		DateRange: strings.TrimSpace(req.DateRange),
		Notes:     strings.TrimSpace(req.Notes),
	}
	var err error
	if p.FreightIDs, err = uniqueIDs("freight_ids", req.FreightIDs); err != nil {
		return nil, err
	}
	if p.AbastecimentoIDs, err = uniqueIDs("abastecimento_ids", req.AbastecimentoIDs); err != nil {
		return nil, err
	}
	if p.OutrosInsumoIDs, err = uniqueIDs("outros_insumo_ids", req.OutrosInsumoIDs); err != nil {
		return nil, err
	}
	if req.TotalValue != nil {
		p.TotalValue = req.TotalValue.Round(2)
	}

	if proof != nil {
		url, err := uc.store.Save(ctx, constants.FolderPaymentProofs, proof)
		if err != nil {
			return nil, fmt.Errorf("failed to store payment proof: %w", err)
		}
		p.ProofURL = url
	}

	if err := uc.paymentRepo.Create(ctx, p, req.TotalValue == nil); err != nil {
		uc.discard(ctx, p.ProofURL)
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	logger.Info("Payment created",
		logger.Int64("payment_id", p.ID),
		logger.Int64("driver_id", p.DriverID),
		logger.String("total_value", p.TotalValue.StringFixed(2)),
		logger.Int("rows", rowCount(p)),
		logger.Int64s("freight_ids", p.FreightIDs),
		logger.Int64s("abastecimento_ids", p.AbastecimentoIDs),
		logger.Int64s("outros_insumo_ids", p.OutrosInsumoIDs),
	)
	if err := uc.paymentGW.PublishPaymentCreated(ctx, eventFor(p)); err != nil {
		logger.Warn("Payment created without event", logger.Int64("payment_id", p.ID), logger.ErrorField(err))
	}
	return p, nil
}

// DeletePayment reverts a settlement and removes its proof file
func (uc *PaymentUC) DeletePayment(ctx context.Context, id int64) error {
	p, err := uc.paymentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	uc.discard(ctx, p.ProofURL)

	logger.Info("Payment deleted",
		logger.Int64("payment_id", p.ID),
		logger.Int64("driver_id", p.DriverID),
		logger.Int("rows", rowCount(p)),
	)
	if err := uc.paymentGW.PublishPaymentDeleted(ctx, eventFor(p)); err != nil {
		logger.Warn("Payment deleted without event", logger.Int64("payment_id", p.ID), logger.ErrorField(err))
	}
	return nil
}

// GetPayment retrieves a payment
func (uc *PaymentUC) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPayments lists payments, all of them when driverID is nil
func (uc *PaymentUC) ListPayments(ctx context.Context, driverID *int64) ([]*models.Payment, error) {
	return uc.paymentRepo.List(ctx, driverID)
}

func (uc *PaymentUC) discard(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := uc.store.Delete(ctx, url); err != nil {
		logger.Warn("Failed to remove payment proof",
			logger.String("url", url),
			logger.ErrorField(err),
		)
	}
}

// uniqueIDs drops repeated ids keeping the first occurrence
func uniqueIDs(field string, ids []int64) (pq.Int64Array, error) {
	out := make(pq.Int64Array, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, models.NewValidationError("invalid id %d in %s", id, field)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func rowCount(p *models.Payment) int {
	return len(p.FreightIDs) + len(p.AbastecimentoIDs) + len(p.OutrosInsumoIDs)
}

func eventFor(p *models.Payment) models.PaymentEvent {
	return models.PaymentEvent{
		PaymentID:  p.ID,
		DriverID:   p.DriverID,
		TotalValue: p.TotalValue,
		Rows:       rowCount(p),
		OccurredAt: models.Now(),
	}
}
