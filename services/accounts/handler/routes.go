package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/accounts/handler/http"
)

// Handler wires the account management handlers onto the admin group
type Handler struct {
	accountHandler *http.AccountHandler
}

// NewHandler creates the accounts route handler
func NewHandler(accountHandler *http.AccountHandler) *Handler {
	return &Handler{accountHandler: accountHandler}
}

// RegisterRoutes registers the account routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	admins := groups.Admin.Group("/admins")
	admins.POST("", h.accountHandler.CreateAdmin)
	admins.GET("", h.accountHandler.ListAdmins)

	clients := groups.Admin.Group("/clients")
	clients.POST("", h.accountHandler.CreateClient)
	clients.GET("", h.accountHandler.ListClients)
	clients.GET("/:id", h.accountHandler.GetClient)
	clients.PUT("/:id", h.accountHandler.UpdateClient)
	clients.DELETE("/:id", h.accountHandler.DeleteClient)

	abastecedores := groups.Admin.Group("/abastecedores")
	abastecedores.POST("", h.accountHandler.CreateAbastecedor)
	abastecedores.GET("", h.accountHandler.ListAbastecedores)
	abastecedores.GET("/:id", h.accountHandler.GetAbastecedor)
	abastecedores.PUT("/:id", h.accountHandler.UpdateAbastecedor)
	abastecedores.DELETE("/:id", h.accountHandler.DeleteAbastecedor)
}
