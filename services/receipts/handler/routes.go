package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/receipts/handler/http"
)

// Handler wires the receipt HTTP handlers onto the role groups
type Handler struct {
	receiptHandler *http.ReceiptHandler
}

// NewHandler creates the receipt route handler
func NewHandler(receiptHandler *http.ReceiptHandler) *Handler {
	return &Handler{receiptHandler: receiptHandler}
}

// RegisterRoutes registers the comprovante pool routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	groups.Driver.POST("/receipts/:pool", h.receiptHandler.SubmitReceipt)
	groups.Driver.GET("/receipts/:pool", h.receiptHandler.ListOwnReceipts)

	admin := groups.Admin.Group("/receipts/:pool")
	admin.GET("/unassigned", h.receiptHandler.ListUnassigned)
	admin.POST("/:id/assign", h.receiptHandler.AssignReceipt)
	admin.POST("/unassign/:target_id", h.receiptHandler.UnassignReceipt)
	admin.DELETE("/:id", h.receiptHandler.DeleteReceipt)
}
