package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/drivers"
)

// DriverUC implements drivers.DriverUC
type DriverUC struct {
	driverRepo drivers.DriverRepo
	cfg        *models.Config
}

// NewDriverUC creates a new driver usecase instance
func NewDriverUC(
	driverRepo drivers.DriverRepo,
	cfg *models.Config,
) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		cfg:        cfg,
	}
}

// CreateDriver registers a driver. Name, CPF and password are required.
func (uc *DriverUC) CreateDriver(ctx context.Context, req *models.DriverRequest) (*models.Driver, error) {
	if req == nil || req.Name == nil || *req.Name == "" {
		return nil, models.NewValidationError("name is required")
	}
	if req.CPF == nil || !utils.IsValidCPF(*req.CPF) {
		return nil, models.NewValidationError("a valid cpf is required")
	}
	if req.Password == nil || *req.Password == "" {
		return nil, models.NewValidationError("password is required")
	}

	driver := &models.Driver{Active: true}
	if err := uc.apply(driver, req); err != nil {
		return nil, err
	}

	if err := uc.driverRepo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	logger.Info("Driver created",
		logger.Int64("driver_id", driver.ID),
		logger.String("cpf", utils.FormatCPF(driver.CPF)),
	)
	return driver, nil
}

// UpdateDriver patches the non-nil request fields onto the stored driver
func (uc *DriverUC) UpdateDriver(ctx context.Context, id int64, req *models.DriverRequest) (*models.Driver, error) {
	if req == nil {
		return nil, models.NewValidationError("empty request")
	}
	if req.CPF != nil && !utils.IsValidCPF(*req.CPF) {
		return nil, models.NewValidationError("invalid cpf")
	}

	driver, err := uc.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(driver, req); err != nil {
		return nil, err
	}

	if err := uc.driverRepo.Update(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// DeleteDriver removes a driver without ledger history
func (uc *DriverUC) DeleteDriver(ctx context.Context, id int64) error {
	if err := uc.driverRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	logger.Info("Driver deleted", logger.Int64("driver_id", id))
	return nil
}

// GetDriver retrieves a driver by id
func (uc *DriverUC) GetDriver(ctx context.Context, id int64) (*models.Driver, error) {
	return uc.driverRepo.GetByID(ctx, id)
}

// ListDrivers lists drivers matching filter
func (uc *DriverUC) ListDrivers(ctx context.Context, filter models.DriverFilter) ([]*models.Driver, error) {
	return uc.driverRepo.List(ctx, filter)
}

// GetBalance computes what the carrier currently owes the driver. Paid rows
// are already excluded from the three sums, so settled payments are reported
// separately in PaidTotal and not subtracted a second time.
func (uc *DriverUC) GetBalance(ctx context.Context, driverID int64) (*models.DriverBalance, error) {
	if _, err := uc.driverRepo.GetByID(ctx, driverID); err != nil {
		return nil, err
	}

	return uc.balance(ctx, driverID)
}

// GetStats aggregates the driver's freight history
func (uc *DriverUC) GetStats(ctx context.Context, driverID int64) (*models.DriverStats, error) {
	if _, err := uc.driverRepo.GetByID(ctx, driverID); err != nil {
		return nil, err
	}
	return uc.driverRepo.Stats(ctx, driverID)
}

// GetProfile returns the driver's own account together with the current balance
func (uc *DriverUC) GetProfile(ctx context.Context, driverID int64) (*models.DriverProfile, error) {
	driver, err := uc.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.balance(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return &models.DriverProfile{Driver: driver, Balance: balance}, nil
}

func (uc *DriverUC) balance(ctx context.Context, driverID int64) (*models.DriverBalance, error) {
	balance, err := uc.driverRepo.Balance(ctx, driverID)
	if err != nil {
		return nil, err
	}
	// The three totals only cover unpaid rows, so settled work already left
	// them. Subtracting PaidTotal as well would count each payment twice.
	balance.AmountOwed = balance.FreightsTotal.
		Sub(balance.FuelTotal).
		Sub(balance.SuppliesTotal)
	return balance, nil
}

func (uc *DriverUC) apply(driver *models.Driver, req *models.DriverRequest) error {
	req.ApplyTo(driver)

	phone, err := utils.NormalizeOptionalPhone(driver.Phone)
	if err != nil {
		return err
	}
	driver.Phone = phone

	if driver.PricePerKmTon.IsNegative() {
		return models.NewValidationError("price_per_km_ton must not be negative")
	}
	for _, plate := range driver.Plates {
		if !utils.IsValidPlate(plate) {
			return models.NewValidationError("invalid plate %s", plate)
		}
	}

	if req.Password != nil {
		if len(*req.Password) < 6 {
			return models.NewValidationError("password must have at least 6 characters")
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		driver.PasswordHash = hash
	}
	return nil
}
