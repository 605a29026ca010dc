package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Driver is a truck driver paid per km×ton
type Driver struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	CPF           string          `json:"cpf" db:"cpf"`
	Phone         string          `json:"phone" db:"phone"`
	Email         string          `json:"email" db:"email"`
	PasswordHash  string          `json:"-" db:"password_hash"`
	PricePerKmTon decimal.Decimal `json:"price_per_km_ton" db:"price_per_km_ton"`
	Plates        Plates          `json:"plates" db:"plates"`
	Active        bool            `json:"active" db:"active"`
	ClientID      *int64          `json:"client_id" db:"client_id"`
	ClientName    string          `json:"client_name,omitempty" db:"client_name"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// DriverRequest creates or patches a driver; nil fields are left untouched on update.
type DriverRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=2"`
	CPF           *string          `json:"cpf" validate:"omitempty,cpf"`
	Phone         *string          `json:"phone" validate:"omitempty,br_phone"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	Password      *string          `json:"password" validate:"omitempty,min=6"`
	PricePerKmTon *decimal.Decimal `json:"price_per_km_ton"`
	Plates        *Plates          `json:"plates" validate:"omitempty,dive,plate"`
	Active        *bool            `json:"active"`
	ClientID      *int64           `json:"client_id"`
}

// ApplyTo copies the non-nil fields onto d. Password is handled by the caller.
func (r *DriverRequest) ApplyTo(d *Driver) {
	if r.Name != nil {
		d.Name = strings.TrimSpace(*r.Name)
	}
	if r.CPF != nil {
		d.CPF = DigitsOnly(*r.CPF)
	}
	if r.Phone != nil {
		d.Phone = DigitsOnly(*r.Phone)
	}
	if r.Email != nil {
		d.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.PricePerKmTon != nil {
		d.PricePerKmTon = *r.PricePerKmTon
	}
	if r.Plates != nil {
		d.Plates = *r.Plates
	}
	if r.Active != nil {
		d.Active = *r.Active
	}
	if r.ClientID != nil {
		if *r.ClientID == 0 {
			d.ClientID = nil
		} else {
			id := *r.ClientID
			d.ClientID = &id
		}
	}
}

// DriverFilter narrows driver listings
type DriverFilter struct {
	Active   *bool
	ClientID *int64
}

// DriverBalance is what the carrier owes a driver, derived from current rows
type DriverBalance struct {
	DriverID      int64           `json:"driver_id"`
	FreightsTotal decimal.Decimal `json:"freights_total"`
	FuelTotal     decimal.Decimal `json:"fuel_total"`
	SuppliesTotal decimal.Decimal `json:"supplies_total"`
	PaidTotal     decimal.Decimal `json:"paid_total"`
	AmountOwed    decimal.Decimal `json:"amount_owed"`
}

// DriverProfile is the driver-facing view of their own account
type DriverProfile struct {
	Driver  *Driver        `json:"driver"`
	Balance *DriverBalance `json:"balance"`
}

// DriverStats aggregates a driver's freight history
type DriverStats struct {
	DriverID         int64           `json:"driver_id" db:"driver_id"`
	TotalFreights    int             `json:"total_freights" db:"total_freights"`
	PendingFreights  int             `json:"pending_freights" db:"pending_freights"`
	CompleteFreights int             `json:"complete_freights" db:"complete_freights"`
	PaidFreights     int             `json:"paid_freights" db:"paid_freights"`
	TotalKm          decimal.Decimal `json:"total_km" db:"total_km"`
	TotalTons        decimal.Decimal `json:"total_tons" db:"total_tons"`
	GrossValue       decimal.Decimal `json:"gross_value" db:"gross_value"`
}

// Plates is the list of vehicle plates, stored as TEXT[]. JSON input may be
// a list, a single string, a comma separated string or a JSON-encoded list
// inside a string; everything is normalised to upper case without separators.
type Plates []string

func (p *Plates) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*p = NormalizePlates(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("plates must be a string or a list of strings")
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			*p = NormalizePlates(list)
			return nil
		}
	}
	*p = NormalizePlates(strings.Split(s, ","))
	return nil
}

func (p *Plates) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("failed to scan plates: %w", err)
	}
	*p = Plates(arr)
	return nil
}

func (p Plates) Value() (driver.Value, error) {
	if p == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(p).Value()
}

// NormalizePlate upper-cases a plate and strips dashes and spaces
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	plate = strings.ReplaceAll(plate, "-", "")
	return strings.ReplaceAll(plate, " ", "")
}

// NormalizePlates normalises and de-duplicates, dropping empty entries
func NormalizePlates(raw []string) Plates {
	out := make(Plates, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		plate := NormalizePlate(r)
		if plate == "" || seen[plate] {
			continue
		}
		seen[plate] = true
		out = append(out, plate)
	}
	return out
}

// DigitsOnly strips every non-digit rune
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
