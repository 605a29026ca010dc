package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/storage"
	"github.com/piresc/freightdesk/services/purchases"
)

var receiptFolders = map[models.PurchaseKind]string{
	models.KindFuel:   constants.FolderFuelReceipts,
	models.KindSupply: constants.FolderSupplyReceipts,
}

// PurchaseUC implements purchases.PurchaseUC
type PurchaseUC struct {
	purchaseRepo purchases.PurchaseRepo
	store        storage.FileStore
	cfg          *models.Config
}

// NewPurchaseUC creates a new purchase usecase instance
func NewPurchaseUC(
	purchaseRepo purchases.PurchaseRepo,
	store storage.FileStore,
	cfg *models.Config,
) *PurchaseUC {
	return &PurchaseUC{
		purchaseRepo: purchaseRepo,
		store:        store,
		cfg:          cfg,
	}
}

// CreatePurchase registers a purchase with any fields filled in. The
// receipt is optional and uploaded before the row is written.
func (uc *PurchaseUC) CreatePurchase(ctx context.Context, kind models.PurchaseKind, abastecedorID *int64, req *models.PurchaseRequest, receipt io.Reader) (*models.Purchase, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown purchase kind %q", kind)
	}
	if req == nil || req.DriverID == nil || *req.DriverID <= 0 {
		return nil, models.NewValidationError("driver_id is required")
	}

	p := &models.Purchase{
		Kind:          kind,
		AbastecedorID: abastecedorID,
		Date:          models.NewDate(models.Now()),
		Status:        models.StatusPending,
	}
	req.ApplyTo(p)
	if err := validate(p); err != nil {
		return nil, err
	}
	p.Recalculate()

	if receipt != nil {
		url, err := uc.store.Save(ctx, receiptFolders[kind], receipt)
		if err != nil {
			return nil, fmt.Errorf("failed to store receipt: %w", err)
		}
		p.ReceiptURL = url
	}

	if err := uc.purchaseRepo.Create(ctx, p); err != nil {
		uc.discard(ctx, p.ReceiptURL)
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	fields := []logger.Field{
		logger.String("kind", string(kind)),
		logger.Int64("purchase_id", p.ID),
		logger.Int64("driver_id", p.DriverID),
		logger.String("status", string(p.Status)),
	}
	if abastecedorID != nil {
		fields = append(fields, logger.Int64("abastecedor_id", *abastecedorID))
	}
	logger.Info("Purchase created", fields...)
	return p, nil
}

// SubmitPurchase is the driver-side create: a receipt photo and a date,
// completed later by an admin.
func (uc *PurchaseUC) SubmitPurchase(ctx context.Context, kind models.PurchaseKind, driverID int64, date models.Date, receipt io.Reader) (*models.Purchase, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError("unknown purchase kind %q", kind)
	}
	if receipt == nil {
		return nil, models.NewValidationError("receipt is required")
	}
	if date.IsZero() {
		date = models.NewDate(models.Now())
	}

	url, err := uc.store.Save(ctx, receiptFolders[kind], receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	p := &models.Purchase{
		Kind:       kind,
		DriverID:   driverID,
		Date:       date,
		Status:     models.StatusPending,
		ReceiptURL: url,
	}
	p.Recalculate()

	if err := uc.purchaseRepo.Create(ctx, p); err != nil {
		uc.discard(ctx, url)
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	logger.Info("Purchase submitted by driver",
		logger.String("kind", string(kind)),
		logger.Int64("purchase_id", p.ID),
		logger.Int64("driver_id", driverID),
	)
	return p, nil
}

// UpdatePurchase patches a purchase and recomputes its total
func (uc *PurchaseUC) UpdatePurchase(ctx context.Context, kind models.PurchaseKind, id int64, req *models.PurchaseRequest) (*models.Purchase, error) {
	if req == nil {
		return nil, models.NewValidationError("empty request")
	}

	p, err := uc.purchaseRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if p.Paid {
		return nil, fmt.Errorf("%s %d is already settled: %w", kind, id, models.ErrConflict)
	}

	req.ApplyTo(p)
	if err := validate(p); err != nil {
		return nil, err
	}
	p.Recalculate()

	if err := uc.purchaseRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", kind, err)
	}
	return p, nil
}

// DeletePurchase removes an unsettled purchase
func (uc *PurchaseUC) DeletePurchase(ctx context.Context, kind models.PurchaseKind, id int64) error {
	p, err := uc.purchaseRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if p.Paid {
		return fmt.Errorf("%s %d is referenced by a payment: %w", kind, id, models.ErrConflict)
	}
	if err := uc.purchaseRepo.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	logger.Info("Purchase deleted",
		logger.String("kind", string(kind)),
		logger.Int64("purchase_id", id),
	)
	return nil
}

// GetPurchase retrieves a purchase
func (uc *PurchaseUC) GetPurchase(ctx context.Context, kind models.PurchaseKind, id int64) (*models.Purchase, error) {
	return uc.purchaseRepo.GetByID(ctx, kind, id)
}

// ListPurchases lists purchases of one kind matching filter
func (uc *PurchaseUC) ListPurchases(ctx context.Context, kind models.PurchaseKind, filter models.PurchaseFilter) ([]*models.Purchase, error) {
	if filter.Status != "" && filter.Status != models.StatusPending && filter.Status != models.StatusComplete {
		return nil, models.NewValidationError("invalid status %s", filter.Status)
	}
	return uc.purchaseRepo.List(ctx, kind, filter)
}

func (uc *PurchaseUC) discard(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := uc.store.Delete(ctx, url); err != nil {
		logger.Warn("Failed to remove orphaned upload",
			logger.String("url", url),
			logger.ErrorField(err),
		)
	}
}

func validate(p *models.Purchase) error {
	if p.Quantity.IsNegative() || p.UnitPrice.IsNegative() {
		return models.NewValidationError("quantity and unit_price must not be negative")
	}
	return nil
}
