package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Payment is a driver settlement. Creating one marks every referenced
// freight, abastecimento and outro insumo as paid; deleting it reverts them.
type Payment struct {
	ID               int64           `json:"id" db:"id"`
	DriverID         int64           `json:"driver_id" db:"driver_id"`
	DriverName       string          `json:"driver_name,omitempty" db:"driver_name"`
	DriverCPF        string          `json:"driver_cpf,omitempty" db:"driver_cpf"`
	DateRange        string          `json:"date_range" db:"date_range"`
	TotalValue       decimal.Decimal `json:"total_value" db:"total_value"`
	ProofURL         string          `json:"proof_url" db:"proof_url"`
	FreightIDs       pq.Int64Array   `json:"freight_ids" db:"freight_ids"`
	AbastecimentoIDs pq.Int64Array   `json:"abastecimento_ids" db:"abastecimento_ids"`
	OutrosInsumoIDs  pq.Int64Array   `json:"outros_insumo_ids" db:"outros_insumo_ids"`
	Notes            string          `json:"notes" db:"notes"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// PaymentRequest creates a settlement. When TotalValue is omitted it is
// derived from the referenced rows.
type PaymentRequest struct {
	DriverID         int64            `json:"driver_id" validate:"required,gt=0"`
	DateRange        string           `json:"date_range" validate:"required"`
	TotalValue       *decimal.Decimal `json:"total_value"`
	FreightIDs       []int64          `json:"freight_ids"`
	AbastecimentoIDs []int64          `json:"abastecimento_ids"`
	OutrosInsumoIDs  []int64          `json:"outros_insumo_ids"`
	Notes            string           `json:"notes"`
}

// Empty reports whether the request references no rows at all
func (r *PaymentRequest) Empty() bool {
	return len(r.FreightIDs) == 0 && len(r.AbastecimentoIDs) == 0 && len(r.OutrosInsumoIDs) == 0
}

// SettlementLine is one referenced row as shown in a payment statement
type SettlementLine struct {
	Kind        string          `json:"kind" db:"kind"`
	ID          int64           `json:"id" db:"id"`
	Date        Date            `json:"date" db:"date"`
	Description string          `json:"description" db:"description"`
	TotalValue  decimal.Decimal `json:"total_value" db:"total_value"`
}

// PaymentEvent is published when a settlement is created or reverted
type PaymentEvent struct {
	PaymentID  int64           `json:"payment_id"`
	DriverID   int64           `json:"driver_id"`
	TotalValue decimal.Decimal `json:"total_value"`
	Rows       int             `json:"rows"`
	OccurredAt time.Time       `json:"occurred_at"`
}
