package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/freights/handler/http"
)

// Handler wires the freight HTTP handlers onto the role groups
type Handler struct {
	freightHandler *http.FreightHandler
}

// NewHandler creates the freight route handler
func NewHandler(freightHandler *http.FreightHandler) *Handler {
	return &Handler{freightHandler: freightHandler}
}

// RegisterRoutes registers the freight routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	admin := groups.Admin.Group("/freights")
	admin.POST("", h.freightHandler.CreateFreight)
	admin.GET("", h.freightHandler.ListFreights)
	admin.GET("/:id", h.freightHandler.GetFreight)
	admin.PUT("/:id", h.freightHandler.UpdateFreight)
	admin.PATCH("/:id/client-paid", h.freightHandler.SetClientPaid)
	admin.DELETE("/:id", h.freightHandler.DeleteFreight)

	groups.Driver.GET("/freights", h.freightHandler.ListOwnFreights)
	groups.Driver.POST("/freights", h.freightHandler.SubmitFreight)

	groups.Cliente.GET("/freights", h.freightHandler.ListClientFreights)
}
