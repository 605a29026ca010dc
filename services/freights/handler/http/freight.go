package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/freights"
)

// LoadingReceiptField is the multipart field carrying the loading receipt photo
const LoadingReceiptField = "loading_receipt"

// FreightHandler handles HTTP requests for freight operations
type FreightHandler struct {
	freightUC freights.FreightUC
}

// NewFreightHandler creates a new freight handler
func NewFreightHandler(freightUC freights.FreightUC) *FreightHandler {
	return &FreightHandler{
		freightUC: freightUC,
	}
}

// CreateFreight handles freight creation by an admin
func (h *FreightHandler) CreateFreight(c echo.Context) error {
	var req models.FreightRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	freight, err := h.freightUC.CreateFreight(c.Request().Context(), &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create freight")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Freight created successfully", freight)
}

// UpdateFreight handles partial freight updates
func (h *FreightHandler) UpdateFreight(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid freight ID")
	}

	var req models.FreightRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	freight, err := h.freightUC.UpdateFreight(c.Request().Context(), id, &req)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update freight")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freight updated successfully", freight)
}

// SetClientPaid handles PATCH /admin/freights/:id/client-paid
func (h *FreightHandler) SetClientPaid(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid freight ID")
	}

	var req models.ClientPaidRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	freight, err := h.freightUC.SetClientPaid(c.Request().Context(), id, *req.ClientPaid)
	if err != nil {
		return utils.HandleError(c, err, "Failed to update freight")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freight updated successfully", freight)
}

// DeleteFreight handles freight removal
func (h *FreightHandler) DeleteFreight(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid freight ID")
	}

	if err := h.freightUC.DeleteFreight(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete freight")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freight deleted successfully", nil)
}

// GetFreight handles freight retrieval
func (h *FreightHandler) GetFreight(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid freight ID")
	}

	freight, err := h.freightUC.GetFreight(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve freight")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freight retrieved successfully", freight)
}

// ListFreights handles the admin listing with ?driver_id, ?client_id,
// ?status, ?paid, ?client_paid, ?from and ?to filters
func (h *FreightHandler) ListFreights(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid filter")
	}

	list, err := h.freightUC.ListFreights(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list freights")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freights retrieved successfully", list)
}

// SubmitFreight handles the driver upload of a loading receipt
func (h *FreightHandler) SubmitFreight(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	date, err := utils.FormDate(c, "date")
	if err != nil {
		return utils.HandleError(c, err, "Invalid date")
	}
	file, err := utils.OpenFormFile(c, LoadingReceiptField)
	if err != nil {
		return utils.HandleError(c, err, "Invalid upload")
	}
	if file == nil {
		return utils.BadRequestResponse(c, "loading_receipt file is required")
	}
	defer file.Close()

	var day models.Date
	if date != nil {
		day = *date
	}

	freight, err := h.freightUC.SubmitFreight(c.Request().Context(), driverID, day, file)
	if err != nil {
		return utils.HandleError(c, err, "Failed to submit freight")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Freight submitted successfully", freight)
}

// ListOwnFreights lists the authenticated driver's freights
func (h *FreightHandler) ListOwnFreights(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid filter")
	}
	filter.DriverID = &driverID
	filter.ClientID = nil

	list, err := h.freightUC.ListFreights(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list freights")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Freights retrieved successfully", list)
}

// ListClientFreights lists the freights billed to the authenticated client
func (h *FreightHandler) ListClientFreights(c echo.Context) error {
	clientID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.HandleError(c, err, "Invalid filter")
	}
	filter.ClientID = &clientID
	filter.DriverID = nil

	list, err := h.freightUC.ListFreights(c.Request().Context(), filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list freights")
	}

	logger.Debug("Client freights listed",
		logger.Int64("client_id", clientID),
		logger.Int("count", len(list)),
	)
	return utils.SuccessResponse(c, http.StatusOK, "Freights retrieved successfully", list)
}

func parseFilter(c echo.Context) (models.FreightFilter, error) {
	var (
		filter models.FreightFilter
		err    error
	)
	if filter.DriverID, err = utils.QueryInt64(c, "driver_id"); err != nil {
		return filter, err
	}
	if filter.ClientID, err = utils.QueryInt64(c, "client_id"); err != nil {
		return filter, err
	}
	if filter.Paid, err = utils.QueryBool(c, "paid"); err != nil {
		return filter, err
	}
	if filter.ClientPaid, err = utils.QueryBool(c, "client_paid"); err != nil {
		return filter, err
	}
	if filter.From, err = utils.QueryDate(c, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = utils.QueryDate(c, "to"); err != nil {
		return filter, err
	}
	filter.Status = models.Status(c.QueryParam("status"))
	return filter, nil
}
