package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

const locationSelect = `
	SELECT l.driver_id, d.name AS driver_name, l.freight_id, l.latitude, l.longitude,
		l.geohash, l.speed, l.heading, l.updated_at
	FROM driver_locations l
	JOIN drivers d ON d.id = l.driver_id`

// LocationRepo implements the locations.LocationRepo interface
type LocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(db *sqlx.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// Upsert replaces the driver's fix
func (r *LocationRepo) Upsert(ctx context.Context, loc *models.DriverLocation) error {
	query := `
		INSERT INTO driver_locations (driver_id, freight_id, latitude, longitude, geohash, speed, heading, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (driver_id) DO UPDATE
		SET freight_id = EXCLUDED.freight_id, latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude, geohash = EXCLUDED.geohash,
			speed = EXCLUDED.speed, heading = EXCLUDED.heading, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		loc.DriverID,
		loc.FreightID,
		loc.Latitude,
		loc.Longitude,
		loc.Geohash,
		loc.Speed,
		loc.Heading,
	).Scan(&loc.UpdatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return models.NotFoundError("driver", loc.DriverID)
		}
		return fmt.Errorf("failed to upsert location: %w", err)
	}
	return nil
}

// Get returns a driver's latest fix
func (r *LocationRepo) Get(ctx context.Context, driverID int64) (*models.DriverLocation, error) {
	var loc models.DriverLocation
	if err := r.db.GetContext(ctx, &loc, locationSelect+` WHERE l.driver_id = $1`, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no location for driver %d: %w", driverID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &loc, nil
}

// ListAll returns every driver's latest fix
func (r *LocationRepo) ListAll(ctx context.Context) ([]*models.DriverLocation, error) {
	return r.list(ctx, locationSelect+` ORDER BY d.name, l.driver_id`)
}

// ListForClient returns the fixes of drivers hauling one of the client's
// freights. A driver assigned to the client is only included while the fix
// carries no freight, so a load for another client stays hidden.
func (r *LocationRepo) ListForClient(ctx context.Context, clientID int64) ([]*models.DriverLocation, error) {
	query := locationSelect + `
		LEFT JOIN freights f ON f.id = l.freight_id
		WHERE f.client_id = $1 OR (l.freight_id IS NULL AND d.client_id = $1)
		ORDER BY d.name, l.driver_id`
	return r.list(ctx, query, clientID)
}

// FreightDriver returns the owner of a freight
func (r *LocationRepo) FreightDriver(ctx context.Context, freightID int64) (int64, error) {
	var driverID int64
	err := r.db.GetContext(ctx, &driverID, `SELECT driver_id FROM freights WHERE id = $1`, freightID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.NotFoundError("freight", freightID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get freight driver: %w", err)
	}
	return driverID, nil
}

func (r *LocationRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.DriverLocation, error) {
	list := []*models.DriverLocation{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return list, nil
}
