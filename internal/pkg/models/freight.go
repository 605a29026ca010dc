package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Freight is one delivery job billed by km×tons×rate
type Freight struct {
	ID                  int64           `json:"id" db:"id"`
	DriverID            int64           `json:"driver_id" db:"driver_id"`
	DriverName          string          `json:"driver_name,omitempty" db:"driver_name"`
	Date                Date            `json:"date" db:"date"`
	Origin              string          `json:"origin" db:"origin"`
	Destination         string          `json:"destination" db:"destination"`
	ClientID            *int64          `json:"client_id" db:"client_id"`
	ClientName          string          `json:"client_name" db:"client_name"`
	ClientAccountName   string          `json:"client_account_name,omitempty" db:"client_account_name"`
	Km                  decimal.Decimal `json:"km" db:"km"`
	Tons                decimal.Decimal `json:"tons" db:"tons"`
	PricePerKmTon       decimal.Decimal `json:"price_per_km_ton" db:"price_per_km_ton"`
	ClientPricePerKmTon decimal.Decimal `json:"client_price_per_km_ton" db:"client_price_per_km_ton"`
	TotalValue          decimal.Decimal `json:"total_value" db:"total_value"`
	ClientTotalValue    decimal.Decimal `json:"client_total_value" db:"client_total_value"`
	Status              Status          `json:"status" db:"status"`
	Paid                bool            `json:"paid" db:"paid"`
	ClientPaid          bool            `json:"client_paid" db:"client_paid"`
	LoadingReceiptURL   string          `json:"loading_receipt_url" db:"loading_receipt_url"`
	UnloadingReceiptURL string          `json:"unloading_receipt_url" db:"unloading_receipt_url"`
	Notes               string          `json:"notes" db:"notes"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}

// Recalculate derives both totals from the current operands and promotes
// the freight to complete once every billing field is filled.
func (f *Freight) Recalculate() {
	f.TotalValue = Total(f.Km, f.Tons, f.PricePerKmTon)
	f.ClientTotalValue = Total(f.Km, f.Tons, f.ClientPricePerKmTon)
	if f.Status == "" {
		f.Status = StatusPending
	}
	if f.Status == StatusPending && f.Billable() {
		f.Status = StatusComplete
	}
}

// Billable reports whether km, tons, driver rate and client are all set
func (f *Freight) Billable() bool {
	hasClient := strings.TrimSpace(f.ClientName) != "" || f.ClientID != nil
	return hasClient && positive(f.Km, f.Tons, f.PricePerKmTon)
}

// FreightRequest is the admin create/patch payload. Totals and status are
// always derived server-side and are not accepted from the caller.
type FreightRequest struct {
	DriverID            *int64           `json:"driver_id"`
	Date                *Date            `json:"date"`
	Origin              *string          `json:"origin"`
	Destination         *string          `json:"destination"`
	ClientID            *int64           `json:"client_id"`
	ClientName          *string          `json:"client_name"`
	Km                  *decimal.Decimal `json:"km"`
	Tons                *decimal.Decimal `json:"tons"`
	PricePerKmTon       *decimal.Decimal `json:"price_per_km_ton"`
	ClientPricePerKmTon *decimal.Decimal `json:"client_price_per_km_ton"`
	Notes               *string          `json:"notes"`
}

// ApplyTo copies the non-nil fields onto f
func (r *FreightRequest) ApplyTo(f *Freight) {
	if r.DriverID != nil {
		f.DriverID = *r.DriverID
	}
	if r.Date != nil {
		f.Date = *r.Date
	}
	if r.Origin != nil {
		f.Origin = strings.TrimSpace(*r.Origin)
	}
	if r.Destination != nil {
		f.Destination = strings.TrimSpace(*r.Destination)
	}
	if r.ClientID != nil {
		if *r.ClientID == 0 {
			f.ClientID = nil
		} else {
			id := *r.ClientID
			f.ClientID = &id
		}
	}
	if r.ClientName != nil {
		f.ClientName = strings.TrimSpace(*r.ClientName)
	}
	if r.Km != nil {
		f.Km = *r.Km
	}
	if r.Tons != nil {
		f.Tons = *r.Tons
	}
	if r.PricePerKmTon != nil {
		f.PricePerKmTon = *r.PricePerKmTon
	}
	if r.ClientPricePerKmTon != nil {
		f.ClientPricePerKmTon = *r.ClientPricePerKmTon
	}
	if r.Notes != nil {
		f.Notes = *r.Notes
	}
}

// FreightFilter narrows freight listings
type FreightFilter struct {
	DriverID   *int64
	ClientID   *int64
	Status     Status
	Paid       *bool
	ClientPaid *bool
	From       *Date
	To         *Date
}

// ClientPaidRequest toggles whether the client has paid the carrier
type ClientPaidRequest struct {
	ClientPaid *bool `json:"client_paid" validate:"required"`
}
