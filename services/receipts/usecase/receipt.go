package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/storage"
	"github.com/piresc/freightdesk/services/receipts"
)

var poolFolders = map[models.ReceiptPool]string{
	models.PoolCarga:         constants.FolderLoadingReceipts,
	models.PoolDescarga:      constants.FolderUnloadingReceipts,
	models.PoolAbastecimento: constants.FolderFuelReceipts,
}

// ReceiptUC implements receipts.ReceiptUC
type ReceiptUC struct {
	receiptRepo receipts.ReceiptRepo
	receiptGW   receipts.ReceiptGW
	store       storage.FileStore
	cfg         *models.Config
}

// NewReceiptUC creates a new receipt usecase instance
func NewReceiptUC(
	receiptRepo receipts.ReceiptRepo,
	receiptGW receipts.ReceiptGW,
	store storage.FileStore,
	cfg *models.Config,
) *ReceiptUC {
	return &ReceiptUC{
		receiptRepo: receiptRepo,
		receiptGW:   receiptGW,
		store:       store,
		cfg:         cfg,
	}
}

// SubmitReceipt uploads a driver's comprovante into the pool
func (uc *ReceiptUC) SubmitReceipt(ctx context.Context, pool models.ReceiptPool, driverID int64, date models.Date, file io.Reader) (*models.Receipt, error) {
	if !pool.Valid() {
		return nil, models.NewValidationError("unknown receipt pool %q", pool)
	}
	if file == nil {
		return nil, models.NewValidationError("file is required")
	}
	if date.IsZero() {
		date = models.NewDate(models.Now())
	}

	url, err := uc.store.Save(ctx, poolFolders[pool], file)
	if err != nil {
		return nil, fmt.Errorf("failed to store receipt: %w", err)
	}

	receipt := &models.Receipt{
		Pool:     pool,
		DriverID: driverID,
		FileURL:  url,
		Date:     date,
	}
	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		uc.discard(ctx, url)
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	logger.Info("Receipt submitted",
		logger.String("pool", string(pool)),
		logger.Int64("receipt_id", receipt.ID),
		logger.Int64("driver_id", driverID),
	)
	return receipt, nil
}

// ListUnassigned returns the waiting receipts with their display labels
func (uc *ReceiptUC) ListUnassigned(ctx context.Context, pool models.ReceiptPool) ([]*models.Receipt, error) {
	if !pool.Valid() {
		return nil, models.NewValidationError("unknown receipt pool %q", pool)
	}
	list, err := uc.receiptRepo.ListUnassigned(ctx, pool)
	if err != nil {
		return nil, err
	}
	labelReceipts(list)
	return list, nil
}

// ListOwn returns what a driver submitted to the pool
func (uc *ReceiptUC) ListOwn(ctx context.Context, pool models.ReceiptPool, driverID int64) ([]*models.Receipt, error) {
	if !pool.Valid() {
		return nil, models.NewValidationError("unknown receipt pool %q", pool)
	}
	list, err := uc.receiptRepo.ListByDriver(ctx, pool, driverID)
	if err != nil {
		return nil, err
	}
	labelReceipts(list)
	return list, nil
}

// AssignReceipt attaches a waiting receipt to a freight or abastecimento
func (uc *ReceiptUC) AssignReceipt(ctx context.Context, pool models.ReceiptPool, receiptID, targetID int64) (*models.Receipt, error) {
	if !pool.Valid() {
		return nil, models.NewValidationError("unknown receipt pool %q", pool)
	}
	if targetID <= 0 {
		return nil, models.NewValidationError("target_id is required")
	}

	receipt, err := uc.receiptRepo.Assign(ctx, pool, receiptID, targetID)
	if err != nil {
		return nil, err
	}

	logger.Info("Receipt assigned",
		logger.String("pool", string(pool)),
		logger.Int64("receipt_id", receiptID),
		logger.Int64("target_id", targetID),
	)
	event := models.ReceiptAssignedEvent{
		Pool:       pool,
		ReceiptID:  receipt.ID,
		TargetID:   targetID,
		DriverID:   receipt.DriverID,
		FileURL:    receipt.FileURL,
		OccurredAt: models.Now(),
	}
	if err := uc.receiptGW.PublishReceiptAssigned(ctx, event); err != nil {
		logger.Warn("Receipt assigned without event", logger.Int64("receipt_id", receiptID), logger.ErrorField(err))
	}
	return receipt, nil
}

// UnassignReceipt returns the target's receipts to the pool
func (uc *ReceiptUC) UnassignReceipt(ctx context.Context, pool models.ReceiptPool, targetID int64) error {
	if !pool.Valid() {
		return models.NewValidationError("unknown receipt pool %q", pool)
	}
	released, err := uc.receiptRepo.Unassign(ctx, pool, targetID)
	if err != nil {
		return err
	}

	logger.Info("Receipts returned to pool",
		logger.String("pool", string(pool)),
		logger.Int64("target_id", targetID),
		logger.Int("released", len(released)),
	)
	return nil
}

// DeleteReceipt removes a waiting receipt together with its file
func (uc *ReceiptUC) DeleteReceipt(ctx context.Context, pool models.ReceiptPool, id int64) error {
	if !pool.Valid() {
		return models.NewValidationError("unknown receipt pool %q", pool)
	}
	receipt, err := uc.receiptRepo.Delete(ctx, pool, id)
	if err != nil {
		return err
	}
	uc.discard(ctx, receipt.FileURL)
	return nil
}

func (uc *ReceiptUC) discard(ctx context.Context, url string) {
	if err := uc.store.Delete(ctx, url); err != nil {
		logger.Warn("Failed to remove receipt file",
			logger.String("url", url),
			logger.ErrorField(err),
		)
	}
}

type receiptGroup struct {
	driverID int64
	date     string
}

// labelReceipts names each receipt "<driver> - dd/mm/yyyy". When a driver
// sent several on one day they get a " - N" suffix in upload order.
func labelReceipts(list []*models.Receipt) {
	groups := make(map[receiptGroup][]*models.Receipt)
	for _, r := range list {
		key := receiptGroup{driverID: r.DriverID, date: r.Date.String()}
		groups[key] = append(groups[key], r)
	}

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		for i, r := range group {
			r.Label = fmt.Sprintf("%s - %s", r.DriverName, r.Date.Display())
			if len(group) > 1 {
				r.Label = fmt.Sprintf("%s - %d", r.Label, i+1)
			}
		}
	}
}
