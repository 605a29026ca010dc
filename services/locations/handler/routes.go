package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/locations/handler/http"
)

// Handler wires the location HTTP handlers onto the role groups
type Handler struct {
	locationHandler *http.LocationHandler
}

// NewHandler creates the location route handler
func NewHandler(locationHandler *http.LocationHandler) *Handler {
	return &Handler{locationHandler: locationHandler}
}

// RegisterRoutes registers the tracking routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	groups.Driver.PUT("/location", h.locationHandler.UpdateLocation)
	groups.Driver.GET("/location", h.locationHandler.GetOwnLocation)

	groups.Admin.GET("/locations", h.locationHandler.ListLocations)
	groups.Admin.GET("/locations/:driver_id", h.locationHandler.GetDriverLocation)

	groups.Cliente.GET("/locations", h.locationHandler.ListClientLocations)
}
