package utils

import (
	"fmt"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash. A malformed or empty
// hash never matches.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NormalizeOptionalPhone normalises a phone number, keeping "" as "".
// Invalid numbers are reported as validation errors.
func NormalizeOptionalPhone(phone string) (string, error) {
	if phone == "" {
		return "", nil
	}
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return "", models.NewValidationError("invalid phone: %v", err)
	}
	return normalized, nil
}
