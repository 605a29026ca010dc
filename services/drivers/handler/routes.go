package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/drivers/handler/http"
)

// Handler wires the driver HTTP handlers onto the role groups
type Handler struct {
	driverHandler *http.DriverHandler
}

// NewHandler creates the driver route handler
func NewHandler(driverHandler *http.DriverHandler) *Handler {
	return &Handler{driverHandler: driverHandler}
}

// RegisterRoutes registers the driver routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	admin := groups.Admin.Group("/drivers")
	admin.POST("", h.driverHandler.CreateDriver)
	admin.GET("", h.driverHandler.ListDrivers)
	admin.GET("/:id", h.driverHandler.GetDriver)
	admin.PUT("/:id", h.driverHandler.UpdateDriver)
	admin.DELETE("/:id", h.driverHandler.DeleteDriver)
	admin.GET("/:id/balance", h.driverHandler.GetBalance)
	admin.GET("/:id/stats", h.driverHandler.GetStats)

	groups.Driver.GET("/me", h.driverHandler.Me)

	groups.Abastecedor.GET("/drivers", h.driverHandler.ListActiveDrivers)
}
