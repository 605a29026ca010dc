package auth

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// password reset through a one-time code
	RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirm) error
}
