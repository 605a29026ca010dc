package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/auth/handler/http"
)

// Handler wires the auth HTTP handlers onto the public group
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes registers the public auth routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	authGroup := groups.Public.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/password-reset/request", h.authHandler.RequestPasswordReset)
	authGroup.POST("/password-reset/confirm", h.authHandler.ConfirmPasswordReset)
}
