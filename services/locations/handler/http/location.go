package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/locations"
)

// LocationHandler handles driver tracking
type LocationHandler struct {
	locationUC locations.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC locations.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateLocation stores the authenticated driver's fix
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.LocationUpdate
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	loc, err := h.locationUC.UpdateLocation(c.Request().Context(), driverID, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", loc)
}

// GetOwnLocation returns the authenticated driver's last fix
func (h *LocationHandler) GetOwnLocation(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	return h.get(c, driverID)
}

// GetDriverLocation returns the last fix of :driver_id
func (h *LocationHandler) GetDriverLocation(c echo.Context) error {
	driverID, err := utils.ParamID(c, "driver_id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}
	return h.get(c, driverID)
}

// ListLocations returns every driver's last fix
func (h *LocationHandler) ListLocations(c echo.Context) error {
	list, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return utils.HandleError(c, err, "Failed to list locations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", list)
}

// ListClientLocations returns the fixes visible to the authenticated client
func (h *LocationHandler) ListClientLocations(c echo.Context) error {
	clientID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	list, err := h.locationUC.ListClientLocations(c.Request().Context(), clientID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list locations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", list)
}

func (h *LocationHandler) get(c echo.Context, driverID int64) error {
	loc, err := h.locationUC.GetLocation(c.Request().Context(), driverID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve location")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", loc)
}
