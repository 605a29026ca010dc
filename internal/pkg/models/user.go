package models

import "time"

// Role is the access role embedded in the JWT
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDriver      Role = "driver"
	RoleAbastecedor Role = "abastecedor"
	RoleCliente     Role = "cliente"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleAbastecedor, RoleCliente:
		return true
	}
	return false
}

// Account is the credential view of any identity able to log in.
type Account struct {
	ID           int64  `json:"id" db:"id"`
	Role         Role   `json:"role" db:"-"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Phone        string `json:"phone" db:"phone"`
	Document     string `json:"document,omitempty" db:"document"`
	PasswordHash string `json:"-" db:"password_hash"`
	Active       bool   `json:"active" db:"active"`
}

// Admin is a back-office operator
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Client is a shipper billed for freights
type Client struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Document     string    `json:"document" db:"document"` // CPF or CNPJ, digits only
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Abastecedor is a fuel-station agent submitting purchases for drivers
type Abastecedor struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	CPF          string    `json:"cpf" db:"cpf"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Station      string    `json:"station" db:"station"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AdminRequest creates an admin
type AdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,br_phone"`
	Password string `json:"password" validate:"required,min=6"`
}

// ClientRequest creates or patches a client; nil fields are left untouched on update.
type ClientRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Document *string `json:"document" validate:"omitempty,document"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,br_phone"`
	Address  *string `json:"address"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Active   *bool   `json:"active"`
}

// AbastecedorRequest creates or patches an abastecedor
type AbastecedorRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2"`
	CPF      *string `json:"cpf" validate:"omitempty,cpf"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,br_phone"`
	Station  *string `json:"station"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Active   *bool   `json:"active"`
}

// LoginRequest is the credential payload for every role
type LoginRequest struct {
	Role     Role   `json:"role" validate:"required"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful login
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

// PasswordResetRequest asks for a one-time code
type PasswordResetRequest struct {
	Role  Role   `json:"role" validate:"required"`
	Phone string `json:"phone" validate:"required,br_phone"`
}

// PasswordResetConfirm sets a new password using the one-time code
type PasswordResetConfirm struct {
	Role        Role   `json:"role" validate:"required"`
	Phone       string `json:"phone" validate:"required,br_phone"`
	Code        string `json:"code" validate:"required,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
