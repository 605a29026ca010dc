package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/payments"
)

const (
	// ProofField is the multipart field carrying the payment proof
	ProofField = "proof"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PaymentHandler handles settlement endpoints
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreatePayment accepts JSON or a multipart form with an optional proof file
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var (
		req   *models.PaymentRequest
		proof io.Reader
		err   error
	)
	if utils.IsMultipart(c) {
		if req, err = requestFromForm(c); err != nil {
			return utils.HandleError(c, err, "Invalid request payload")
		}
		file, err := utils.OpenFormFile(c, ProofField)
		if err != nil {
			return utils.HandleError(c, err, "Invalid upload")
		}
		if file != nil {
			defer file.Close()
			proof = file
		}
	} else {
		req = &models.PaymentRequest{}
		if err := utils.BindAndValidate(c, req); err != nil {
			return utils.HandleError(c, err, "Invalid request payload")
		}
	}

	payment, err := h.paymentUC.CreatePayment(c.Request().Context(), req, proof)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create payment")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", payment)
}

// DeletePayment reverts a settlement
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid payment ID")
	}
	if err := h.paymentUC.DeletePayment(c.Request().Context(), id); err != nil {
		return utils.HandleError(c, err, "Failed to delete payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment deleted successfully", nil)
}

// GetPayment handles retrieval by id
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid payment ID")
	}
	payment, err := h.paymentUC.GetPayment(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to retrieve payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", payment)
}

// ListPayments lists every payment, or one driver's with ?driver_id
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	driverID, err := utils.QueryInt64(c, "driver_id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid driver ID")
	}
	return h.list(c, driverID)
}

// ListOwnPayments lists the authenticated driver's payments
func (h *PaymentHandler) ListOwnPayments(c echo.Context) error {
	driverID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}
	return h.list(c, &driverID)
}

// Statement streams the payment workbook as an attachment
func (h *PaymentHandler) Statement(c echo.Context) error {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		return utils.HandleError(c, err, "Invalid payment ID")
	}
	data, err := h.paymentUC.Statement(c.Request().Context(), id)
	if err != nil {
		return utils.HandleError(c, err, "Failed to build statement")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="pagamento-%d.xlsx"`, id))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func (h *PaymentHandler) list(c echo.Context, driverID *int64) error {
	list, err := h.paymentUC.ListPayments(c.Request().Context(), driverID)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list payments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", list)
}

func requestFromForm(c echo.Context) (*models.PaymentRequest, error) {
	req := &models.PaymentRequest{
		DateRange: c.FormValue("date_range"),
		Notes:     c.FormValue("notes"),
	}

	driverID, err := utils.FormInt64(c, "driver_id")
	if err != nil {
		return nil, err
	}
	if driverID != nil {
		req.DriverID = *driverID
	}
	if req.TotalValue, err = utils.FormDecimal(c, "total_value"); err != nil {
		return nil, err
	}

	lists := map[string]*[]int64{
		"freight_ids":       &req.FreightIDs,
		"abastecimento_ids": &req.AbastecimentoIDs,
		"outros_insumo_ids": &req.OutrosInsumoIDs,
	}
	for field, dest := range lists {
		ids, err := utils.ParseIDList(c.FormValue(field))
		if err != nil {
			return nil, models.NewValidationError("invalid %s: %v", field, err)
		}
		*dest = ids
	}

	if err := c.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}
