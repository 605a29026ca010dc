package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/auth"
)

// AuthHandler handles login and password reset requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login handles credential login for every role
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RequestPasswordReset handles the one-time code request
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), &req); err != nil {
		logger.Warn("Password reset request failed",
			logger.ErrorField(err),
			logger.String("role", string(req.Role)),
		)
		return utils.HandleError(c, err, "Failed to send reset code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "If the phone is registered, a code was sent", nil)
}

// ConfirmPasswordReset handles setting a new password with the code
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req models.PasswordResetConfirm
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	if err := h.authUC.ConfirmPasswordReset(c.Request().Context(), &req); err != nil {
		return utils.HandleError(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", nil)
}
