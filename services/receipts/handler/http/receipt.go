package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/receipts"
)

// FileField is the multipart field carrying the comprovante
const FileField = "file"

// ReceiptHandler handles the comprovante pools
type ReceiptHandler struct {
	receiptUC receipts.ReceiptUC
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptUC receipts.ReceiptUC) *ReceiptHandler {
	return &ReceiptHandler{
		receiptUC: receiptUC,
	}
}

// SubmitReceipt handles a driver upload into the :pool pool
func (h *ReceiptHandler) SubmitReceipt(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	date, err := utils.FormDate(c, "date")
	if err != nil {
		return utils.HandleError(c, err, "Invalid date")
	}
	file, err := utils.OpenFormFile(c, FileField)
	if err != nil {
		return utils.HandleError(c, err, "Invalid upload")
	}
	if file == nil {
		return utils.BadRequestResponse(c, "file is required")
	}
	defer file.Close()

	var day models.Date
	if date != nil {
		day = *date
	}

	receipt, err := h.receiptUC.SubmitReceipt(c.Request().Context(), pool(c), driverID, day, file)
	if err != nil {
		return utils.HandleError(c, err, "Failed to submit receipt")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Receipt submitted successfully", receipt)
}

// ListOwnReceipts lists the authenticated driver's submissions
func (h *ReceiptHandler) ListOwnReceipts(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.receiptUC.ListOwn(c.Request().Context(), pool(c), driverID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list receipts")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipts retrieved successfully", list)
}

// ListUnassigned lists the pool's waiting receipts
func (h *ReceiptHandler) ListUnassigned(c echo.Context) error {
	list, err := h.receiptUC.ListUnassigned(c.Request().Context(), pool(c))
	if err != nil {
		return utils.HandleError(c, err, "Failed to list receipts")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipts retrieved successfully", list)
}

// AssignReceipt attaches receipt :id to the target in the body
func (h *ReceiptHandler) AssignReceipt(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid receipt ID")
	}
	var req models.AssignReceiptRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, err, "Invalid request payload")
	}

	receipt, err := h.receiptUC.AssignReceipt(c.Request().Context(), pool(c), id, req.TargetID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to assign receipt")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipt assigned successfully", receipt)
}

// UnassignReceipt returns the receipts of :target_id to the pool
func (h *ReceiptHandler) UnassignReceipt(c echo.Context) error {
	targetID, err := utils.ParamID(c, "target_id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid target ID")
	}
	if err := h.receiptUC.UnassignReceipt(c.Request().Context(), pool(c), targetID); err != nil {
		return utils.HandleError(c, err, "Failed to unassign receipt")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipt unassigned successfully", nil)
}

// DeleteReceipt removes a waiting receipt
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid receipt ID")
	}
	if err := h.receiptUC.DeleteReceipt(c.Request().Context(), pool(c), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete receipt")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Receipt deleted successfully", nil)
}

func pool(c echo.Context) models.ReceiptPool {
	return models.ReceiptPool(c.Param("pool"))
}
