package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/shopspring/decimal"
)

const paymentSelect = `
	SELECT p.id, p.driver_id, d.name AS driver_name, d.cpf AS driver_cpf,
		p.date_range, p.total_value, p.proof_url, p.freight_ids,
		p.abastecimento_ids, p.outros_insumo_ids, p.notes, p.created_at
	FROM payments p
	JOIN drivers d ON d.id = p.driver_id`

// settled is one table whose rows a payment flags as paid
type settled struct {
	table  string
	entity string
	ids    pq.Int64Array
}

// settledRows lists the referenced tables in a fixed order so concurrent
// settlements always lock rows in the same sequence
func settledRows(p *models.Payment) []settled {
	return []settled{
		{table: "freights", entity: "freight", ids: p.FreightIDs},
		{table: "abastecimentos", entity: "abastecimento", ids: p.AbastecimentoIDs},
		{table: "outros_insumos", entity: "outro insumo", ids: p.OutrosInsumoIDs},
	}
}

type lockedRow struct {
	ID         int64           `db:"id"`
	DriverID   int64           `db:"driver_id"`
	Paid       bool            `db:"paid"`
	TotalValue decimal.Decimal `db:"total_value"`
	Status     models.Status   `db:"status"`
}

// PaymentRepo implements the payments.PaymentRepo interface
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create settles the referenced rows atomically
func (r *PaymentRepo) Create(ctx context.Context, p *models.Payment, deriveTotal bool) error {
	normalizeLists(p)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	total := decimal.Zero
	for _, s := range settledRows(p) {
		if len(s.ids) == 0 {
			continue
		}
		sum, err := lockUnpaid(ctx, tx, s, p.DriverID)
		if err != nil {
			return err
		}
		total = total.Add(sum)
	}
	if deriveTotal {
		p.TotalValue = total
	}

	query := `
		INSERT INTO payments (driver_id, date_range, total_value, proof_url,
			freight_ids, abastecimento_ids, outros_insumo_ids, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err = tx.QueryRowxContext(ctx, query,
		p.DriverID,
		p.DateRange,
		p.TotalValue,
		p.ProofURL,
		p.FreightIDs,
		p.AbastecimentoIDs,
		p.OutrosInsumoIDs,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return models.NotFoundError("driver", p.DriverID)
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	for _, s := range settledRows(p) {
		if err := setPaid(ctx, tx, s, true); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment: %w", err)
	}
	return nil
}

// Delete reverts the paid flags of a payment and removes it
func (r *PaymentRepo) Delete(ctx context.Context, id int64) (*models.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var p models.Payment
	err = tx.GetContext(ctx, &p, `SELECT * FROM payments WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFoundError("payment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	for _, s := range settledRows(&p) {
		if err := setPaid(ctx, tx, s, false); err != nil {
			return nil, err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit payment removal: %w", err)
	}
	return &p, nil
}

// GetByID retrieves a payment with its driver's display fields
func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.GetContext(ctx, &p, paymentSelect+` WHERE p.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("payment", id)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// List returns payments newest first, optionally for one driver
func (r *PaymentRepo) List(ctx context.Context, driverID *int64) ([]*models.Payment, error) {
	var conds database.Conditions
	if driverID != nil {
		conds.Add("p.driver_id = ?", *driverID)
	}
	query := database.Bind(paymentSelect + conds.Where() + ` ORDER BY p.created_at DESC, p.id DESC`)

	list := []*models.Payment{}
	if err := r.db.SelectContext(ctx, &list, query, conds.Args()...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return list, nil
}

// Lines loads every row referenced by the payment, oldest first
func (r *PaymentRepo) Lines(ctx context.Context, p *models.Payment) ([]*models.SettlementLine, error) {
	normalizeLists(p)
	query := `
		SELECT 'freight' AS kind, id, date,
			CONCAT_WS(' - ', NULLIF(origin, ''), NULLIF(destination, '')) AS description,
			total_value
		FROM freights WHERE id = ANY($1)
		UNION ALL
		SELECT 'abastecimento' AS kind, id, date,
			CONCAT_WS(' - ', NULLIF(vendor, ''), NULLIF(description, '')) AS description,
			total_value
		FROM abastecimentos WHERE id = ANY($2)
		UNION ALL
		SELECT 'outro_insumo' AS kind, id, date,
			CONCAT_WS(' - ', NULLIF(vendor, ''), NULLIF(description, '')) AS description,
			total_value
		FROM outros_insumos WHERE id = ANY($3)
		ORDER BY date, kind, id
	`
	lines := []*models.SettlementLine{}
	err := r.db.SelectContext(ctx, &lines, query, p.FreightIDs, p.AbastecimentoIDs, p.OutrosInsumoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment lines: %w", err)
	}
	return lines, nil
}

// lockUnpaid locks the referenced rows and returns the sum of their totals.
// Every id must exist, belong to the driver, be complete and be unpaid.
func lockUnpaid(ctx context.Context, tx *sqlx.Tx, s settled, driverID int64) (decimal.Decimal, error) {
	query := fmt.Sprintf(
		`SELECT id, driver_id, paid, total_value, status FROM %s WHERE id = ANY($1) FOR UPDATE`, s.table)

	var rows []lockedRow
	if err := tx.SelectContext(ctx, &rows, query, s.ids); err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock %s rows: %w", s.table, err)
	}

	found := make(map[int64]bool, len(rows))
	sum := decimal.Zero
	for _, row := range rows {
		found[row.ID] = true
		if row.DriverID != driverID {
			return decimal.Zero, models.NewValidationError("%s %d belongs to another driver", s.entity, row.ID)
		}
		if row.Paid {
			return decimal.Zero, models.NewValidationError("%s %d is already paid", s.entity, row.ID)
		}
		if row.Status != models.StatusComplete {
			return decimal.Zero, models.NewValidationError("%s %d is still pending", s.entity, row.ID)
		}
		sum = sum.Add(row.TotalValue)
	}

	var missing []string
	for _, id := range s.ids {
		if !found[id] {
			missing = append(missing, strconv.FormatInt(id, 10))
		}
	}
	if len(missing) > 0 {
		return decimal.Zero, models.NewValidationError("%s not found: %s", s.entity, strings.Join(missing, ", "))
	}
	return sum, nil
}

func setPaid(ctx context.Context, tx *sqlx.Tx, s settled, paid bool) error {
	if len(s.ids) == 0 {
		return nil
	}
	query := fmt.Sprintf(`UPDATE %s SET paid = $1, updated_at = NOW() WHERE id = ANY($2)`, s.table)
	if _, err := tx.ExecContext(ctx, query, paid, s.ids); err != nil {
		return fmt.Errorf("failed to flag %s: %w", s.table, err)
	}
	return nil
}

// normalizeLists keeps the NOT NULL array columns from receiving NULL
func normalizeLists(p *models.Payment) {
	if p.FreightIDs == nil {
		p.FreightIDs = pq.Int64Array{}
	}
	if p.AbastecimentoIDs == nil {
		p.AbastecimentoIDs = pq.Int64Array{}
	}
	if p.OutrosInsumoIDs == nil {
		p.OutrosInsumoIDs = pq.Int64Array{}
	}
}
