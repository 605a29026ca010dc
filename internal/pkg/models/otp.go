package models

import "time"

// OTP is a password-reset code bound to a role and phone number
type OTP struct {
	Role      Role      `json:"role"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
