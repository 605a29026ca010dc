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

const driverColumns = `
	d.id, d.name, d.cpf, d.phone, d.email, d.password_hash, d.price_per_km_ton,
	d.plates, d.active, d.client_id, COALESCE(c.name, '') AS client_name,
	d.created_at, d.updated_at`

const driverFrom = `
	FROM drivers d
	LEFT JOIN clients c ON c.id = d.client_id`

// DriverRepo implements the drivers.DriverRepo interface
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// Create inserts a driver and fills in its id and timestamps
func (r *DriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (name, cpf, phone, email, password_hash, price_per_km_ton,
			plates, active, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		driver.Name,
		driver.CPF,
		driver.Phone,
		driver.Email,
		driver.PasswordHash,
		driver.PricePerKmTon,
		driver.Plates,
		driver.Active,
		driver.ClientID,
	).Scan(&driver.ID, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Update overwrites every mutable column of the driver
func (r *DriverRepo) Update(ctx context.Context, driver *models.Driver) error {
	query := `
		UPDATE drivers
		SET name = $1, cpf = $2, phone = $3, email = $4, password_hash = $5,
			price_per_km_ton = $6, plates = $7, active = $8, client_id = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		driver.Name,
		driver.CPF,
		driver.Phone,
		driver.Email,
		driver.PasswordHash,
		driver.PricePerKmTon,
		driver.Plates,
		driver.Active,
		driver.ClientID,
		driver.ID,
	).Scan(&driver.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFoundError("driver", driver.ID)
	}
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Delete removes a driver. Drivers referenced by ledger rows cannot be removed.
func (r *DriverRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("driver %d still has freights, purchases or payments: %w", id, models.ErrConflict)
		}
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFoundError("driver", id)
	}
	return nil
}

// GetByID retrieves a driver with its client name
func (r *DriverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + driverFrom + ` WHERE d.id = $1`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("driver", id)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// List returns drivers ordered by name
func (r *DriverRepo) List(ctx context.Context, filter models.DriverFilter) ([]*models.Driver, error) {
	var conds database.Conditions
	if filter.Active != nil {
		conds.Add("d.active = ?", *filter.Active)
	}
	if filter.ClientID != nil {
		conds.Add("d.client_id = ?", *filter.ClientID)
	}
	query := database.Bind(`SELECT ` + driverColumns + driverFrom + conds.Where() + ` ORDER BY d.name, d.id`)

	drivers := []*models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query, conds.Args()...); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// Balance sums the complete unpaid ledger rows of a driver together with
// everything already settled. AmountOwed is left for the caller.
func (r *DriverRepo) Balance(ctx context.Context, driverID int64) (*models.DriverBalance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_value) FROM freights
				WHERE driver_id = $1 AND status = 'complete' AND NOT paid), 0),
			COALESCE((SELECT SUM(total_value) FROM abastecimentos
				WHERE driver_id = $1 AND status = 'complete' AND NOT paid), 0),
			COALESCE((SELECT SUM(total_value) FROM outros_insumos
				WHERE driver_id = $1 AND status = 'complete' AND NOT paid), 0),
			COALESCE((SELECT SUM(total_value) FROM payments WHERE driver_id = $1), 0)
	`
	balance := models.DriverBalance{DriverID: driverID}
	err := r.db.QueryRowxContext(ctx, query, driverID).Scan(
		&balance.FreightsTotal,
		&balance.FuelTotal,
		&balance.SuppliesTotal,
		&balance.PaidTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute driver balance: %w", err)
	}
	return &balance, nil
}

// Stats aggregates the freight history of a driver
func (r *DriverRepo) Stats(ctx context.Context, driverID int64) (*models.DriverStats, error) {
	query := `
		SELECT
			$1::BIGINT AS driver_id,
			COUNT(*) AS total_freights,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_freights,
			COUNT(*) FILTER (WHERE status = 'complete') AS complete_freights,
			COUNT(*) FILTER (WHERE paid) AS paid_freights,
			COALESCE(SUM(km), 0) AS total_km,
			COALESCE(SUM(tons), 0) AS total_tons,
			COALESCE(SUM(total_value), 0) AS gross_value
		FROM freights
		WHERE driver_id = $1
	`
	var stats models.DriverStats
	if err := r.db.GetContext(ctx, &stats, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to compute driver stats: %w", err)
	}
	return &stats, nil
}

func mapWriteError(err error) error {
	switch {
	case database.IsUniqueViolation(err):
		return fmt.Errorf("driver with this cpf already exists: %w", models.ErrConflict)
	case database.IsForeignKeyViolation(err):
		return models.NewValidationError("client not found")
	}
	return fmt.Errorf("failed to save driver: %w", err)
}
