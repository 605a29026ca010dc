package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/drivers"
)

// DriverHandler handles HTTP requests for driver operations
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// CreateDriver handles driver registration by an admin
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for driver creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateDriver"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	driver, err := h.driverUC.CreateDriver(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create driver")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", driver)
}

// UpdateDriver handles partial driver updates
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}

	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	driver, err := h.driverUC.UpdateDriver(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", driver)
}

// DeleteDriver handles driver removal
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}

// GetDriver handles driver retrieval
func (h *DriverHandler) GetDriver(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// ListDrivers handles the admin driver listing, optionally filtered by
// ?active= and ?client_id=
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	active, err := utils.QueryBool(c, "active")
	if err != nil {
		return utils.HandleError(c, err, "Invalid filter")
	}
	clientID, err := utils.QueryInt64(c, "client_id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid filter")
	}

	list, err := h.driverUC.ListDrivers(c.Request().Context(), models.DriverFilter{
		Active:   active,
		ClientID: clientID,
	})
	if err != nil {
		return utils.HandleError(c, err, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", list)
}

// ListActiveDrivers lets abastecedores pick the driver they are serving
func (h *DriverHandler) ListActiveDrivers(c echo.Context) error {
	active := true
	list, err := h.driverUC.ListDrivers(c.Request().Context(), models.DriverFilter{Active: &active})
	if err != nil {
		return utils.HandleError(c, err, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", list)
}

// GetBalance handles the amount-owed view of a driver
func (h *DriverHandler) GetBalance(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}

	balance, err := h.driverUC.GetBalance(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to compute balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", balance)
}

// GetStats handles the freight statistics of a driver
func (h *DriverHandler) GetStats(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}

	stats, err := h.driverUC.GetStats(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to compute stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}

// Me returns the authenticated driver's profile and balance
func (h *DriverHandler) Me(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.driverUC.GetProfile(c.Request().Context(), driverID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}
