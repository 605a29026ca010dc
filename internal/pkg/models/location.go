package models

import "time"

// DriverLocation is the latest GPS fix of a driver; one row per driver
type DriverLocation struct {
	DriverID   int64     `json:"driver_id" db:"driver_id"`
	DriverName string    `json:"driver_name,omitempty" db:"driver_name"`
	FreightID  *int64    `json:"freight_id" db:"freight_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Geohash    string    `json:"geohash" db:"geohash"`
	Speed      float64   `json:"speed" db:"speed"`
	Heading    float64   `json:"heading" db:"heading"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// LocationUpdate is the payload a driver app sends
type LocationUpdate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	FreightID *int64  `json:"freight_id"`
	Speed     float64 `json:"speed" validate:"gte=0"`
	Heading   float64 `json:"heading" validate:"gte=0,lt=360"`
}

// LocationEvent is published after each upsert
type LocationEvent struct {
	DriverID  int64     `json:"driver_id"`
	FreightID *int64    `json:"freight_id,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash"`
	Timestamp time.Time `json:"timestamp"`
}
