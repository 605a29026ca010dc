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

// poolTable maps a pool onto its table and the column it fills on assignment
type poolTable struct {
	table        string
	assignCol    string
	targetTable  string
	targetCol    string
	targetEntity string
}

var pools = map[models.ReceiptPool]poolTable{
	models.PoolCarga: {
		table:        "comprovantes_carga",
		assignCol:    "assigned_freight_id",
		targetTable:  "freights",
		targetCol:    "loading_receipt_url",
		targetEntity: "freight",
	},
	models.PoolDescarga: {
		table:        "comprovantes_descarga",
		assignCol:    "assigned_freight_id",
		targetTable:  "freights",
		targetCol:    "unloading_receipt_url",
		targetEntity: "freight",
	},
	models.PoolAbastecimento: {
		table:        "comprovantes_abastecimento",
		assignCol:    "assigned_abastecimento_id",
		targetTable:  "abastecimentos",
		targetCol:    "receipt_url",
		targetEntity: "abastecimento",
	},
}

func tableFor(pool models.ReceiptPool) (poolTable, error) {
	t, ok := pools[pool]
	if !ok {
		return poolTable{}, models.NewValidationError("unknown receipt pool %q", pool)
	}
	return t, nil
}

// selectFrom lists a pool's rows with the submitting driver's name
func (t poolTable) selectFrom() string {
	return fmt.Sprintf(`
		SELECT r.id, r.driver_id, d.name AS driver_name, r.file_url, r.date,
			r.%s AS assigned_id, r.created_at
		FROM %s r
		JOIN drivers d ON d.id = r.driver_id`, t.assignCol, t.table)
}

// returning is the RETURNING list matching models.Receipt without the driver name
func (t poolTable) returning() string {
	return fmt.Sprintf(`RETURNING id, driver_id, file_url, date, %s AS assigned_id, created_at`, t.assignCol)
}

// ReceiptRepo implements the receipts.ReceiptRepo interface
type ReceiptRepo struct {
	db *sqlx.DB
}

// NewReceiptRepo creates a new receipt repository
func NewReceiptRepo(db *sqlx.DB) *ReceiptRepo {
	return &ReceiptRepo{db: db}
}

// Create inserts an unassigned receipt and fills in the driver name
func (r *ReceiptRepo) Create(ctx context.Context, receipt *models.Receipt) error {
	t, err := tableFor(receipt.Pool)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO %s (driver_id, file_url, date)
			VALUES ($1, $2, $3)
			RETURNING id, driver_id, created_at
		)
		SELECT i.id, d.name, i.created_at
		FROM inserted i
		JOIN drivers d ON d.id = i.driver_id
	`, t.table)
	err = r.db.QueryRowxContext(ctx, query, receipt.DriverID, receipt.FileURL, receipt.Date).
		Scan(&receipt.ID, &receipt.DriverName, &receipt.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return models.NotFoundError("driver", receipt.DriverID)
		}
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

// ListUnassigned returns the pool's waiting receipts, newest first
func (r *ReceiptRepo) ListUnassigned(ctx context.Context, pool models.ReceiptPool) ([]*models.Receipt, error) {
	t, err := tableFor(pool)
	if err != nil {
		return nil, err
	}
	query := t.selectFrom() + fmt.Sprintf(` WHERE r.%s IS NULL ORDER BY r.date DESC, r.id DESC`, t.assignCol)
	return r.list(ctx, pool, query)
}

// ListByDriver returns every receipt a driver submitted to the pool
func (r *ReceiptRepo) ListByDriver(ctx context.Context, pool models.ReceiptPool, driverID int64) ([]*models.Receipt, error) {
	t, err := tableFor(pool)
	if err != nil {
		return nil, err
	}
	query := t.selectFrom() + ` WHERE r.driver_id = $1 ORDER BY r.date DESC, r.id DESC`
	return r.list(ctx, pool, query, driverID)
}

// Assign claims the receipt for the target. A receipt that is already
// assigned or missing yields ErrNotFound and leaves the target untouched.
func (r *ReceiptRepo) Assign(ctx context.Context, pool models.ReceiptPool, receiptID, targetID int64) (*models.Receipt, error) {
	t, err := tableFor(pool)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var locked int64
	err = tx.GetContext(ctx, &locked,
		fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, t.targetTable), targetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundError(t.targetEntity, targetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", t.targetEntity, err)
	}

	var receipt models.Receipt
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE id = $2 AND %s IS NULL `,
		t.table, t.assignCol, t.assignCol) + t.returning()
	err = tx.GetContext(ctx, &receipt, query, targetID, receiptID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %d is missing or already assigned: %w", receiptID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign receipt: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = $1, updated_at = NOW() WHERE id = $2`, t.targetTable, t.targetCol),
		receipt.FileURL, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to attach receipt to %s: %w", t.targetEntity, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}
	receipt.Pool = pool
	return &receipt, nil
}

// Unassign returns the target's receipts to the pool
func (r *ReceiptRepo) Unassign(ctx context.Context, pool models.ReceiptPool, targetID int64) ([]*models.Receipt, error) {
	t, err := tableFor(pool)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	released := []*models.Receipt{}
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL WHERE %s = $1 `, t.table, t.assignCol, t.assignCol) + t.returning()
	if err := tx.SelectContext(ctx, &released, query, targetID); err != nil {
		return nil, fmt.Errorf("failed to release receipts: %w", err)
	}
	if len(released) == 0 {
		return nil, fmt.Errorf("no %s receipt assigned to %s %d: %w", pool, t.targetEntity, targetID, models.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = '', updated_at = NOW() WHERE id = $1`, t.targetTable, t.targetCol),
		targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to detach receipt from %s: %w", t.targetEntity, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit unassignment: %w", err)
	}
	for _, receipt := range released {
		receipt.Pool = pool
	}
	return released, nil
}

// Delete removes a receipt that is still waiting in the pool
func (r *ReceiptRepo) Delete(ctx context.Context, pool models.ReceiptPool, id int64) (*models.Receipt, error) {
	t, err := tableFor(pool)
	if err != nil {
		return nil, err
	}

	var receipt models.Receipt
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND %s IS NULL `, t.table, t.assignCol) + t.returning()
	err = r.db.GetContext(ctx, &receipt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %d is missing or assigned: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete receipt: %w", err)
	}
	receipt.Pool = pool
	return &receipt, nil
}

func (r *ReceiptRepo) list(ctx context.Context, pool models.ReceiptPool, query string, args ...interface{}) ([]*models.Receipt, error) {
	list := []*models.Receipt{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	for _, receipt := range list {
		receipt.Pool = pool
	}
	return list, nil
}
