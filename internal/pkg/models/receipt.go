package models

import "time"

// ReceiptPool names one of the three comprovante pools
type ReceiptPool string

const (
	PoolCarga         ReceiptPool = "carga"
	PoolDescarga      ReceiptPool = "descarga"
	PoolAbastecimento ReceiptPool = "abastecimento"
)

// Valid reports whether p is a known pool
func (p ReceiptPool) Valid() bool {
	switch p {
	case PoolCarga, PoolDescarga, PoolAbastecimento:
		return true
	}
	return false
}

// Receipt is an uploaded comprovante waiting in a pool until an admin
// assigns it to a freight (carga/descarga) or an abastecimento.
type Receipt struct {
	ID         int64       `json:"id" db:"id"`
	Pool       ReceiptPool `json:"pool" db:"-"`
	DriverID   int64       `json:"driver_id" db:"driver_id"`
	DriverName string      `json:"driver_name" db:"driver_name"`
	FileURL    string      `json:"file_url" db:"file_url"`
	Date       Date        `json:"date" db:"date"`
	AssignedTo *int64      `json:"assigned_to" db:"assigned_id"`
	Label      string      `json:"label,omitempty" db:"-"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// AssignReceiptRequest names the freight or abastecimento receiving a receipt
type AssignReceiptRequest struct {
	TargetID int64 `json:"target_id" validate:"required,gt=0"`
}

// ReceiptAssignedEvent is published after a receipt is attached to a target
type ReceiptAssignedEvent struct {
	Pool       ReceiptPool `json:"pool"`
	ReceiptID  int64       `json:"receipt_id"`
	TargetID   int64       `json:"target_id"`
	DriverID   int64       `json:"driver_id"`
	FileURL    string      `json:"file_url"`
	OccurredAt time.Time   `json:"occurred_at"`
}
