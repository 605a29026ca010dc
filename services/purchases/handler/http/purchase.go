package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/purchases"
)

// ReceiptField is the multipart field carrying the receipt photo or PDF
const ReceiptField = "receipt"

// PurchaseHandler serves both purchase kinds; each route is bound to one kind
type PurchaseHandler struct {
	purchaseUC purchases.PurchaseUC
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseUC purchases.PurchaseUC) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: purchaseUC,
	}
}

// Create handles admin creation from JSON or a multipart form with a receipt
func (h *PurchaseHandler) Create(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.create(c, kind, nil)
	}
}

// CreateAsAbastecedor records the authenticated abastecedor as submitter
func (h *PurchaseHandler) CreateAsAbastecedor(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		abastecedorID, err := utils.CurrentUserID(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}
		return h.create(c, kind, &abastecedorID)
	}
}

// Submit handles the driver upload of a receipt photo
func (h *PurchaseHandler) Submit(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		driverID, err := utils.CurrentUserID(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		date, err := utils.FormDate(c, "date")
		if err != nil {
			return utils.HandleError(c, err, "Invalid date")
		}
		file, err := utils.OpenFormFile(c, ReceiptField)
		if err != nil {
			return utils.HandleError(c, err, "Invalid upload")
		}
		if file == nil {
			return utils.BadRequestResponse(c, "receipt file is required")
		}
		defer file.Close()

		var day models.Date
		if date != nil {
			day = *date
		}

		p, err := h.purchaseUC.SubmitPurchase(c.Request().Context(), kind, driverID, day, file)
		if err != nil {
			return utils.HandleError(c, err, "Failed to submit purchase")
		}
		return utils.SuccessResponse(c, http.StatusCreated, "Purchase submitted successfully", p)
	}
}

// Update handles partial updates
func (h *PurchaseHandler) Update(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return utils.HandleError(c, err, "Invalid purchase ID")
		}

		var req models.PurchaseRequest
		if err := utils.BindAndValidate(c, &req); err != nil {
			return utils.HandleError(c, err, "Invalid request payload")
		}

		p, err := h.purchaseUC.UpdatePurchase(c.Request().Context(), kind, id, &req)
		if err != nil {
			return utils.HandleError(c, err, "Failed to update purchase")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Purchase updated successfully", p)
	}
}

// Delete handles removal
func (h *PurchaseHandler) Delete(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return utils.HandleError(c, err, "Invalid purchase ID")
		}

		if err := h.purchaseUC.DeletePurchase(c.Request().Context(), kind, id); err != nil {
			return utils.HandleError(c, err, "Failed to delete purchase")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Purchase deleted successfully", nil)
	}
}

// Get handles retrieval by id
func (h *PurchaseHandler) Get(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return utils.HandleError(c, err, "Invalid purchase ID")
		}

		p, err := h.purchaseUC.GetPurchase(c.Request().Context(), kind, id)
		if err != nil {
			return utils.HandleError(c, err, "Failed to retrieve purchase")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Purchase retrieved successfully", p)
	}
}

// List handles the admin listing with ?driver_id, ?status, ?paid, ?from and ?to
func (h *PurchaseHandler) List(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter, err := parseFilter(c)
		if err != nil {
			return utils.HandleError(c, err, "Invalid filter")
		}
		return h.list(c, kind, filter)
	}
}

// ListOwn lists the authenticated driver's purchases
func (h *PurchaseHandler) ListOwn(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		driverID, err := utils.CurrentUserID(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}
		filter, err := parseFilter(c)
		if err != nil {
			return utils.HandleError(c, err, "Invalid filter")
		}
		filter.DriverID = &driverID
		return h.list(c, kind, filter)
	}
}

// ListSubmitted lists what the authenticated abastecedor has submitted
func (h *PurchaseHandler) ListSubmitted(kind models.PurchaseKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		abastecedorID, err := utils.CurrentUserID(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}
		filter, err := parseFilter(c)
		if err != nil {
			return utils.HandleError(c, err, "Invalid filter")
		}
		filter.AbastecedorID = &abastecedorID
		return h.list(c, kind, filter)
	}
}

func (h *PurchaseHandler) create(c echo.Context, kind models.PurchaseKind, abastecedorID *int64) error {
	var (
		req     *models.PurchaseRequest
		receipt io.Reader
		err     error
	)
	if utils.IsMultipart(c) {
		if req, err = requestFromForm(c); err != nil {
			return utils.HandleError(c, err, "Invalid request payload")
		}
		file, err := utils.OpenFormFile(c, ReceiptField)
		if err != nil {
			return utils.HandleError(c, err, "Invalid upload")
		}
		if file != nil {
			defer file.Close()
			receipt = file
		}
	} else {
		req = &models.PurchaseRequest{}
		if err := utils.BindAndValidate(c, req); err != nil {
			return utils.HandleError(c, err, "Invalid request payload")
		}
	}

	p, err := h.purchaseUC.CreatePurchase(c.Request().Context(), kind, abastecedorID, req, receipt)
	if err != nil {
		return utils.HandleError(c, err, "Failed to create purchase")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Purchase created successfully", p)
}

func (h *PurchaseHandler) list(c echo.Context, kind models.PurchaseKind, filter models.PurchaseFilter) error {
	list, err := h.purchaseUC.ListPurchases(c.Request().Context(), kind, filter)
	if err != nil {
		return utils.HandleError(c, err, "Failed to list purchases")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Purchases retrieved successfully", list)
}

func requestFromForm(c echo.Context) (*models.PurchaseRequest, error) {
	req := &models.PurchaseRequest{
		Vendor:      utils.FormString(c, "vendor"),
		Description: utils.FormString(c, "description"),
		Plate:       utils.FormString(c, "plate"),
		Notes:       utils.FormString(c, "notes"),
	}
	var err error
	if req.DriverID, err = utils.FormInt64(c, "driver_id"); err != nil {
		return nil, err
	}
	if req.Date, err = utils.FormDate(c, "date"); err != nil {
		return nil, err
	}
	if req.Quantity, err = utils.FormDecimal(c, "quantity"); err != nil {
		return nil, err
	}
	if req.UnitPrice, err = utils.FormDecimal(c, "unit_price"); err != nil {
		return nil, err
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func parseFilter(c echo.Context) (models.PurchaseFilter, error) {
	var (
		filter models.PurchaseFilter
		err    error
	)
	if filter.DriverID, err = utils.QueryInt64(c, "driver_id"); err != nil {
		return filter, err
	}
	if filter.Paid, err = utils.QueryBool(c, "paid"); err != nil {
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
