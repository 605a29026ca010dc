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

// tables maps each purchase kind onto its table; both share one layout
var tables = map[models.PurchaseKind]string{
	models.KindFuel:   "abastecimentos",
	models.KindSupply: "outros_insumos",
}

const purchaseColumns = `
	p.id, p.driver_id, d.name AS driver_name, p.abastecedor_id, p.date, p.vendor,
	p.description, p.plate, p.quantity, p.unit_price, p.total_value, p.status,
	p.paid, p.receipt_url, p.notes, p.created_at, p.updated_at`

// PurchaseRepo implements the purchases.PurchaseRepo interface
type PurchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new purchase repository
func NewPurchaseRepo(db *sqlx.DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

// Create inserts a purchase into the table of its kind
func (r *PurchaseRepo) Create(ctx context.Context, p *models.Purchase) error {
	table, err := tableFor(p.Kind)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ` + table + ` (driver_id, abastecedor_id, date, vendor, description, plate,
			quantity, unit_price, total_value, status, receipt_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, paid, created_at, updated_at
	`
	err = r.db.QueryRowxContext(ctx, query,
		p.DriverID,
		p.AbastecedorID,
		p.Date,
		p.Vendor,
		p.Description,
		p.Plate,
		p.Quantity,
		p.UnitPrice,
		p.TotalValue,
		p.Status,
		p.ReceiptURL,
		p.Notes,
	).Scan(&p.ID, &p.Paid, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Update overwrites the editable columns of an unpaid purchase; paid is
// owned by payments
func (r *PurchaseRepo) Update(ctx context.Context, p *models.Purchase) error {
	table, err := tableFor(p.Kind)
	if err != nil {
		return err
	}

	query := `
		UPDATE ` + table + `
		SET driver_id = $1, date = $2, vendor = $3, description = $4, plate = $5,
			quantity = $6, unit_price = $7, total_value = $8, status = $9,
			receipt_url = $10, notes = $11, updated_at = NOW()
		WHERE id = $12 AND NOT paid
		RETURNING updated_at
	`
	err = r.db.QueryRowxContext(ctx, query,
		p.DriverID,
		p.Date,
		p.Vendor,
		p.Description,
		p.Plate,
		p.Quantity,
		p.UnitPrice,
		p.TotalValue,
		p.Status,
		p.ReceiptURL,
		p.Notes,
		p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.notWritable(ctx, p.Kind, table, p.ID)
	}
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Delete removes an unpaid purchase
func (r *PurchaseRepo) Delete(ctx context.Context, kind models.PurchaseKind, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1 AND NOT paid`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return r.notWritable(ctx, kind, table, id)
	}
	return nil
}

// notWritable explains why a guarded write touched no row: the purchase is
// either gone or was settled after the caller read it.
func (r *PurchaseRepo) notWritable(ctx context.Context, kind models.PurchaseKind, table string, id int64) error {
	var paid bool
	err := r.db.GetContext(ctx, &paid, `SELECT paid FROM `+table+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFoundError(string(kind), id)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", kind, err)
	}
	if paid {
		return fmt.Errorf("%s %d is already settled: %w", kind, id, models.ErrConflict)
	}
	return models.NotFoundError(string(kind), id)
}

// GetByID retrieves a purchase with its driver name
func (r *PurchaseRepo) GetByID(ctx context.Context, kind models.PurchaseKind, id int64) (*models.Purchase, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + purchaseColumns + fromClause(table) + ` WHERE p.id = $1`

	var p models.Purchase
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError(string(kind), id)
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	p.Kind = kind
	return &p, nil
}

// List returns purchases newest first
func (r *PurchaseRepo) List(ctx context.Context, kind models.PurchaseKind, filter models.PurchaseFilter) ([]*models.Purchase, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var conds database.Conditions
	if filter.DriverID != nil {
		conds.Add("p.driver_id = ?", *filter.DriverID)
	}
	if filter.AbastecedorID != nil {
		conds.Add("p.abastecedor_id = ?", *filter.AbastecedorID)
	}
	if filter.Status != "" {
		conds.Add("p.status = ?", filter.Status)
	}
	if filter.Paid != nil {
		conds.Add("p.paid = ?", *filter.Paid)
	}
	if filter.From != nil {
		conds.Add("p.date >= ?", *filter.From)
	}
	if filter.To != nil {
		conds.Add("p.date <= ?", *filter.To)
	}
	query := database.Bind(`SELECT ` + purchaseColumns + fromClause(table) + conds.Where() +
		` ORDER BY p.date DESC, p.id DESC`)

	list := []*models.Purchase{}
	if err := r.db.SelectContext(ctx, &list, query, conds.Args()...); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	for _, p := range list {
		p.Kind = kind
	}
	return list, nil
}

func tableFor(kind models.PurchaseKind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", models.NewValidationError("unknown purchase kind %q", kind)
	}
	return table, nil
}

func fromClause(table string) string {
	return ` FROM ` + table + ` p JOIN drivers d ON d.id = p.driver_id`
}

func mapWriteError(err error) error {
	if database.IsForeignKeyViolation(err) {
		return models.NewValidationError("driver or abastecedor not found")
	}
	return fmt.Errorf("failed to save purchase: %w", err)
}
