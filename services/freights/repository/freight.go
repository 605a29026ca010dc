package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const freightColumns = `
	f.id, f.driver_id, d.name AS driver_name, f.date, f.origin, f.destination,
	f.client_id, f.client_name, COALESCE(c.name, '') AS client_account_name,
	f.km, f.tons, f.price_per_km_ton, f.client_price_per_km_ton,
	f.total_value, f.client_total_value, f.status, f.paid, f.client_paid,
	f.loading_receipt_url, f.unloading_receipt_url, f.notes,
	f.created_at, f.updated_at`

const freightFrom = `
	FROM freights f
	JOIN drivers d ON d.id = f.driver_id
	LEFT JOIN clients c ON c.id = f.client_id`

// FreightRepo implements the freights.FreightRepo interface
type FreightRepo struct {
	db *sqlx.DB
}

// NewFreightRepo creates a new freight repository
func NewFreightRepo(db *sqlx.DB) *FreightRepo {
	return &FreightRepo{db: db}
}

// Create inserts a freight. Totals and status must already be derived.
func (r *FreightRepo) Create(ctx context.Context, f *models.Freight) error {
	query := `
		INSERT INTO freights (driver_id, date, origin, destination, client_id, client_name,
			km, tons, price_per_km_ton, client_price_per_km_ton, total_value,
			client_total_value, status, loading_receipt_url, unloading_receipt_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, paid, client_paid, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		f.DriverID,
		f.Date,
		f.Origin,
		f.Destination,
		f.ClientID,
		f.ClientName,
		f.Km,
		f.Tons,
		f.PricePerKmTon,
		f.ClientPricePerKmTon,
		f.TotalValue,
		f.ClientTotalValue,
		f.Status,
		f.LoadingReceiptURL,
		f.UnloadingReceiptURL,
		f.Notes,
	).Scan(&f.ID, &f.Paid, &f.ClientPaid, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Update overwrites the editable columns of an unpaid freight. paid is owned
// by payments and client_paid by SetClientPaid, so neither is written here.
func (r *FreightRepo) Update(ctx context.Context, f *models.Freight) error {
	query := `
		UPDATE freights
		SET driver_id = $1, date = $2, origin = $3, destination = $4, client_id = $5,
			client_name = $6, km = $7, tons = $8, price_per_km_ton = $9,
			client_price_per_km_ton = $10, total_value = $11, client_total_value = $12,
			status = $13, loading_receipt_url = $14, unloading_receipt_url = $15,
			notes = $16, updated_at = NOW()
		WHERE id = $17 AND NOT paid
		RETURNING updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		f.DriverID,
		f.Date,
		f.Origin,
		f.Destination,
		f.ClientID,
		f.ClientName,
		f.Km,
		f.Tons,
		f.PricePerKmTon,
		f.ClientPricePerKmTon,
		f.TotalValue,
		f.ClientTotalValue,
		f.Status,
		f.LoadingReceiptURL,
		f.UnloadingReceiptURL,
		f.Notes,
		f.ID,
	).Scan(&f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.notWritable(ctx, f.ID)
	}
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// SetClientPaid flips the client billing flag
func (r *FreightRepo) SetClientPaid(ctx context.Context, id int64, paid bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE freights SET client_paid = $1, updated_at = NOW() WHERE id = $2`, paid, id)
	if err != nil {
		return fmt.Errorf("failed to update client_paid: %w", err)
	}
	return expectOne(res, id)
}

// Delete removes an unpaid freight
func (r *FreightRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM freights WHERE id = $1 AND NOT paid`, id)
	if err != nil {
		return fmt.Errorf("failed to delete freight: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return r.notWritable(ctx, id)
	}
	return nil
}

// notWritable explains why a guarded write touched no row: the freight is
// either gone or was settled after the caller read it.
func (r *FreightRepo) notWritable(ctx context.Context, id int64) error {
	var paid bool
	err := r.db.GetContext(ctx, &paid, `SELECT paid FROM freights WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFoundError("freight", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get freight: %w", err)
	}
	if paid {
		return fmt.Errorf("freight %d is already settled: %w", id, models.ErrConflict)
	}
	return models.NotFoundError("freight", id)
}

// GetByID retrieves a freight with its driver and client names
func (r *FreightRepo) GetByID(ctx context.Context, id int64) (*models.Freight, error) {
	query := `SELECT ` + freightColumns + freightFrom + ` WHERE f.id = $1`

	var f models.Freight
	if err := r.db.GetContext(ctx, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("freight", id)
		}
		return nil, fmt.Errorf("failed to get freight: %w", err)
	}
	return &f, nil
}

// List returns freights newest first
func (r *FreightRepo) List(ctx context.Context, filter models.FreightFilter) ([]*models.Freight, error) {
	var conds database.Conditions
	if filter.DriverID != nil {
		conds.Add("f.driver_id = ?", *filter.DriverID)
	}
	if filter.ClientID != nil {
		conds.Add("f.client_id = ?", *filter.ClientID)
	}
	if filter.Status != "" {
		conds.Add("f.status = ?", filter.Status)
	}
	if filter.Paid != nil {
		conds.Add("f.paid = ?", *filter.Paid)
	}
	if filter.ClientPaid != nil {
		conds.Add("f.client_paid = ?", *filter.ClientPaid)
	}
	if filter.From != nil {
		conds.Add("f.date >= ?", *filter.From)
	}
	if filter.To != nil {
		conds.Add("f.date <= ?", *filter.To)
	}
	query := database.Bind(`SELECT ` + freightColumns + freightFrom + conds.Where() +
		` ORDER BY f.date DESC, f.id DESC`)

	list := []*models.Freight{}
	if err := r.db.SelectContext(ctx, &list, query, conds.Args()...); err != nil {
		return nil, fmt.Errorf("failed to list freights: %w", err)
	}
	return list, nil
}

// DriverRate returns the rate a new freight inherits from its driver
func (r *FreightRepo) DriverRate(ctx context.Context, driverID int64) (decimal.Decimal, error) {
	var rate decimal.Decimal
	err := r.db.GetContext(ctx, &rate, `SELECT price_per_km_ton FROM drivers WHERE id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, models.NotFoundError("driver", driverID)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get driver rate: %w", err)
	}
	return rate, nil
}

func expectOne(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFoundError("freight", id)
	}
	return nil
}

func mapWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return models.NewValidationError("driver or client not found")
	}
	return fmt.Errorf("failed to save freight: %w", err)
}
