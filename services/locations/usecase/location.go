package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/locations"
)

// LocationUC implements locations.LocationUC
type LocationUC struct {
	locationRepo locations.LocationRepo
	locationGW   locations.LocationGW
	cfg          *models.Config
}

// NewLocationUC creates a new location usecase instance
func NewLocationUC(
	locationRepo locations.LocationRepo,
	locationGW locations.LocationGW,
	cfg *models.Config,
) *LocationUC {
	return &LocationUC{
		locationRepo: locationRepo,
		locationGW:   locationGW,
		cfg:          cfg,
	}
}

// UpdateLocation stores a driver's new fix. A freight, when given, must be
// one of the driver's own.
func (uc *LocationUC) UpdateLocation(ctx context.Context, driverID int64, update *models.LocationUpdate) (*models.DriverLocation, error) {
	if update == nil {
		return nil, models.NewValidationError("empty location")
	}
	if update.FreightID != nil {
		owner, err := uc.locationRepo.FreightDriver(ctx, *update.FreightID)
		if err != nil {
			return nil, err
		}
		if owner != driverID {
			return nil, fmt.Errorf("freight %d belongs to another driver: %w", *update.FreightID, models.ErrForbidden)
		}
	}

	loc := &models.DriverLocation{
		DriverID:  driverID,
		FreightID: update.FreightID,
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Geohash:   utils.EncodeLocation(update.Latitude, update.Longitude, utils.LocationGeohashPrecision),
		Speed:     update.Speed,
		Heading:   update.Heading,
	}
	if err := uc.locationRepo.Upsert(ctx, loc); err != nil {
		return nil, err
	}

	logger.Debug("Driver location updated",
		logger.Int64("driver_id", driverID),
		logger.String("geohash", loc.Geohash),
	)
	event := models.LocationEvent{
		DriverID:  driverID,
		FreightID: loc.FreightID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Geohash:   loc.Geohash,
		Timestamp: loc.UpdatedAt,
	}
	if err := uc.locationGW.PublishLocationUpdated(ctx, event); err != nil {
		logger.Warn("Location stored without event", logger.Int64("driver_id", driverID), logger.ErrorField(err))
	}
	return loc, nil
}

// GetLocation returns a driver's latest fix
func (uc *LocationUC) GetLocation(ctx context.Context, driverID int64) (*models.DriverLocation, error) {
	return uc.locationRepo.Get(ctx, driverID)
}

// ListLocations returns every driver's latest fix for the admin map
func (uc *LocationUC) ListLocations(ctx context.Context) ([]*models.DriverLocation, error) {
	return uc.locationRepo.ListAll(ctx)
}

// ListClientLocations returns the fixes a client is allowed to track
func (uc *LocationUC) ListClientLocations(ctx context.Context, clientID int64) ([]*models.DriverLocation, error) {
	return uc.locationRepo.ListForClient(ctx, clientID)
}
