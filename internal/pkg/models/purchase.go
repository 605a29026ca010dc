package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseKind distinguishes fuel purchases from miscellaneous supplies.
// Both share one shape and one lifecycle.
type PurchaseKind string

const (
	KindFuel   PurchaseKind = "abastecimento"
	KindSupply PurchaseKind = "outro_insumo"
)

// Valid reports whether k is a known purchase kind
func (k PurchaseKind) Valid() bool {
	return k == KindFuel || k == KindSupply
}

// Purchase is an abastecimento or an outro insumo attributed to a driver
type Purchase struct {
	ID            int64           `json:"id" db:"id"`
	Kind          PurchaseKind    `json:"kind" db:"-"`
	DriverID      int64           `json:"driver_id" db:"driver_id"`
	DriverName    string          `json:"driver_name,omitempty" db:"driver_name"`
	AbastecedorID *int64          `json:"abastecedor_id" db:"abastecedor_id"`
	Date          Date            `json:"date" db:"date"`
	Vendor        string          `json:"vendor" db:"vendor"`
	Description   string          `json:"description" db:"description"`
	Plate         string          `json:"plate" db:"plate"`
	Quantity      decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price" db:"unit_price"`
	TotalValue    decimal.Decimal `json:"total_value" db:"total_value"`
	Status        Status          `json:"status" db:"status"`
	Paid          bool            `json:"paid" db:"paid"`
	ReceiptURL    string          `json:"receipt_url" db:"receipt_url"`
	Notes         string          `json:"notes" db:"notes"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Recalculate derives total = quantity × unit price and promotes the
// record to complete once quantity, unit price and vendor are set.
func (p *Purchase) Recalculate() {
	p.TotalValue = Total(p.Quantity, p.UnitPrice)
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.Status == StatusPending && p.Billable() {
		p.Status = StatusComplete
	}
}

// Billable reports whether every financially required field is filled
func (p *Purchase) Billable() bool {
	return strings.TrimSpace(p.Vendor) != "" && positive(p.Quantity, p.UnitPrice)
}

// PurchaseRequest is the create/patch payload for both kinds
type PurchaseRequest struct {
	DriverID    *int64           `json:"driver_id" form:"driver_id"`
	Date        *Date            `json:"date" form:"date"`
	Vendor      *string          `json:"vendor" form:"vendor"`
	Description *string          `json:"description" form:"description"`
	Plate       *string          `json:"plate" form:"plate" validate:"omitempty,plate"`
	Quantity    *decimal.Decimal `json:"quantity" form:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price" form:"unit_price"`
	Notes       *string          `json:"notes" form:"notes"`
}

// ApplyTo copies the non-nil fields onto p
func (r *PurchaseRequest) ApplyTo(p *Purchase) {
	if r.DriverID != nil {
		p.DriverID = *r.DriverID
	}
	if r.Date != nil {
		p.Date = *r.Date
	}
	if r.Vendor != nil {
		p.Vendor = strings.TrimSpace(*r.Vendor)
	}
	if r.Description != nil {
		p.Description = strings.TrimSpace(*r.Description)
	}
	if r.Plate != nil {
		p.Plate = NormalizePlate(*r.Plate)
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
	if r.UnitPrice != nil {
		p.UnitPrice = *r.UnitPrice
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
}

// PurchaseFilter narrows purchase listings
type PurchaseFilter struct {
	DriverID      *int64
	AbastecedorID *int64
	Status        Status
	Paid          *bool
	From          *Date
	To            *Date
}
