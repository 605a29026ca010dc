package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/storage"
	"github.com/piresc/freightdesk/services/freights"
)

// FreightUC implements freights.FreightUC
type FreightUC struct {
	freightRepo freights.FreightRepo
	store       storage.FileStore
	cfg         *models.Config
}

// NewFreightUC creates a new freight usecase instance
func NewFreightUC(
	freightRepo freights.FreightRepo,
	store storage.FileStore,
	cfg *models.Config,
) *FreightUC {
	return &FreightUC{
		freightRepo: freightRepo,
		store:       store,
		cfg:         cfg,
	}
}

// CreateFreight registers a freight on behalf of a driver. The driver's
// current rate is used when the request does not carry one.
func (uc *FreightUC) CreateFreight(ctx context.Context, req *models.FreightRequest) (*models.Freight, error) {
	if req == nil || req.DriverID == nil || *req.DriverID <= 0 {
		return nil, models.NewValidationError("driver_id is required")
	}
	if req.Date == nil || req.Date.IsZero() {
		return nil, models.NewValidationError("date is required")
	}

	rate, err := uc.freightRepo.DriverRate(ctx, *req.DriverID)
	if err != nil {
		return nil, err
	}

	freight := &models.Freight{PricePerKmTon: rate, Status: models.StatusPending}
	req.ApplyTo(freight)
	if err := validateAmounts(freight); err != nil {
		return nil, err
	}
	freight.Recalculate()

	if err := uc.freightRepo.Create(ctx, freight); err != nil {
		return nil, fmt.Errorf("failed to create freight: %w", err)
	}

	logger.Info("Freight created",
		logger.Int64("freight_id", freight.ID),
		logger.Int64("driver_id", freight.DriverID),
		logger.String("status", string(freight.Status)),
	)
	return freight, nil
}

// SubmitFreight is the driver-side create: only the loading receipt and the
// date are known, so the freight starts pending with a zero total.
func (uc *FreightUC) SubmitFreight(ctx context.Context, driverID int64, date models.Date, loadingReceipt io.Reader) (*models.Freight, error) {
	if loadingReceipt == nil {
		return nil, models.NewValidationError("loading receipt is required")
	}
	if date.IsZero() {
		date = models.NewDate(models.Now())
	}

	rate, err := uc.freightRepo.DriverRate(ctx, driverID)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.Save(ctx, constants.FolderLoadingReceipts, loadingReceipt)
	if err != nil {
		return nil, fmt.Errorf("failed to store loading receipt: %w", err)
	}

	freight := &models.Freight{
		DriverID:          driverID,
		Date:              date,
		PricePerKmTon:     rate,
		Status:            models.StatusPending,
		LoadingReceiptURL: url,
	}
	freight.Recalculate()

	if err := uc.freightRepo.Create(ctx, freight); err != nil {
		uc.discard(ctx, url)
		return nil, fmt.Errorf("failed to create freight: %w", err)
	}

	logger.Info("Freight submitted by driver",
		logger.Int64("freight_id", freight.ID),
		logger.Int64("driver_id", driverID),
	)
	return freight, nil
}

// UpdateFreight patches a freight and recomputes both totals. Settled
// freights are frozen so payment totals keep matching their rows.
func (uc *FreightUC) UpdateFreight(ctx context.Context, id int64, req *models.FreightRequest) (*models.Freight, error) {
	if req == nil {
		return nil, models.NewValidationError("empty request")
	}

	freight, err := uc.freightRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if freight.Paid {
		return nil, fmt.Errorf("freight %d is already settled: %w", id, models.ErrConflict)
	}

	req.ApplyTo(freight)
	if err := validateAmounts(freight); err != nil {
		return nil, err
	}
	freight.Recalculate()

	if err := uc.freightRepo.Update(ctx, freight); err != nil {
		return nil, fmt.Errorf("failed to update freight: %w", err)
	}
	return freight, nil
}

// SetClientPaid records whether the client has paid the carrier. It is
// independent of the driver's paid flag.
func (uc *FreightUC) SetClientPaid(ctx context.Context, id int64, paid bool) (*models.Freight, error) {
	if err := uc.freightRepo.SetClientPaid(ctx, id, paid); err != nil {
		return nil, err
	}
	logger.Info("Freight client payment updated",
		logger.Int64("freight_id", id),
		logger.Bool("client_paid", paid),
	)
	return uc.freightRepo.GetByID(ctx, id)
}

// DeleteFreight removes a freight that has not been settled
func (uc *FreightUC) DeleteFreight(ctx context.Context, id int64) error {
	freight, err := uc.freightRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if freight.Paid {
		return fmt.Errorf("freight %d is referenced by a payment: %w", id, models.ErrConflict)
	}
	if err := uc.freightRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete freight: %w", err)
	}
	logger.Info("Freight deleted", logger.Int64("freight_id", id))
	return nil
}

// GetFreight retrieves a freight
func (uc *FreightUC) GetFreight(ctx context.Context, id int64) (*models.Freight, error) {
	return uc.freightRepo.GetByID(ctx, id)
}

// ListFreights lists freights matching filter
func (uc *FreightUC) ListFreights(ctx context.Context, filter models.FreightFilter) ([]*models.Freight, error) {
	if filter.Status != "" && filter.Status != models.StatusPending && filter.Status != models.StatusComplete {
		return nil, models.NewValidationError("invalid status %s", filter.Status)
	}
	return uc.freightRepo.List(ctx, filter)
}

func (uc *FreightUC) discard(ctx context.Context, url string) {
	if err := uc.store.Delete(ctx, url); err != nil {
		logger.Warn("Failed to remove orphaned upload",
			logger.String("url", url),
			logger.ErrorField(err),
		)
	}
}

func validateAmounts(f *models.Freight) error {
	if f.Km.IsNegative() || f.Tons.IsNegative() {
		return models.NewValidationError("km and tons must not be negative")
	}
	if f.PricePerKmTon.IsNegative() || f.ClientPricePerKmTon.IsNegative() {
		return models.NewValidationError("rates must not be negative")
	}
	return nil
}
