package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtpkg "github.com/piresc/freightdesk/internal/pkg/jwt"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/auth"
)

const defaultCodeLength = 6

// AuthUC implements auth.AuthUC
type AuthUC struct {
	authRepo auth.AuthRepo
	otpStore auth.OTPStore
	sender   auth.CodeSender
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	otpStore auth.OTPStore,
	sender auth.CodeSender,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		otpStore: otpStore,
		sender:   sender,
		cfg:      cfg,
	}
}

// Login checks the credentials of any role and issues a JWT
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, models.NewValidationError("unknown role %q", req.Role)
	}

	login := strings.TrimSpace(req.Login)
	if req.Role == models.RoleDriver && !strings.Contains(login, "@") {
		login = models.DigitsOnly(login)
	}
	if login == "" {
		return nil, models.NewValidationError("login is required")
	}

	account, err := uc.authRepo.FindByLogin(ctx, req.Role, login)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPassword(account.PasswordHash, req.Password) {
		logger.Warn("Login rejected",
			logger.String("role", string(req.Role)),
			logger.Int64("account_id", account.ID),
		)
		return nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}
	if !account.Active {
		return nil, fmt.Errorf("account is inactive: %w", models.ErrForbidden)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Name, req.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    account.ID,
		Name:      account.Name,
		Role:      req.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// RequestPasswordReset sends a one-time code to the phone of the account.
// Unknown phones succeed silently so callers cannot probe for accounts.
func (uc *AuthUC) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error {
	if !req.Role.Valid() {
		return models.NewValidationError("unknown role %q", req.Role)
	}
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return models.NewValidationError("invalid phone: %v", err)
	}

	account, err := uc.authRepo.FindByPhone(ctx, req.Role, phone)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Info("Password reset requested for unknown phone",
				logger.String("role", string(req.Role)),
				logger.String("phone", utils.MaskPhoneNumber(phone)),
			)
			return nil
		}
		return err
	}

	length := uc.cfg.OTP.Length
	if length <= 0 {
		length = defaultCodeLength
	}
	code, err := utils.GenerateNumericCode(length)
	if err != nil {
		return err
	}

	if err := uc.otpStore.Put(ctx, req.Role, phone, code); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	message := fmt.Sprintf("Seu código de redefinição de senha é %s. Ele expira em %d minutos.",
		code, int(uc.cfg.OTP.TTL.Minutes()))
	if err := uc.sender.Send(ctx, phone, message); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	logger.Info("Password reset code sent",
		logger.String("role", string(req.Role)),
		logger.Int64("account_id", account.ID),
		logger.String("phone", utils.MaskPhoneNumber(phone)),
	)
	return nil
}

// ConfirmPasswordReset consumes the code and stores the new password
func (uc *AuthUC) ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirm) error {
	if !req.Role.Valid() {
		return models.NewValidationError("unknown role %q", req.Role)
	}
	if len(req.NewPassword) < 6 {
		return models.NewValidationError("password must have at least 6 characters")
	}
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return models.NewValidationError("invalid phone: %v", err)
	}

	ok, err := uc.otpStore.Consume(ctx, req.Role, phone, strings.TrimSpace(req.Code))
	if err != nil {
		return fmt.Errorf("failed to verify reset code: %w", err)
	}
	if !ok {
		return models.NewValidationError("invalid or expired code")
	}

	account, err := uc.authRepo.FindByPhone(ctx, req.Role, phone)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.NewValidationError("invalid or expired code")
		}
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.authRepo.UpdatePassword(ctx, req.Role, account.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed",
		logger.String("role", string(req.Role)),
		logger.Int64("account_id", account.ID),
	)
	return nil
}
