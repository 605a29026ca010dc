package handler

import (
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/payments/handler/http"
)

// Handler wires the payment HTTP handlers onto the role groups
type Handler struct {
	paymentHandler *http.PaymentHandler
}

// NewHandler creates the payment route handler
func NewHandler(paymentHandler *http.PaymentHandler) *Handler {
	return &Handler{paymentHandler: paymentHandler}
}

// RegisterRoutes registers the settlement routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	admin := groups.Admin.Group("/payments")
	admin.POST("", h.paymentHandler.CreatePayment)
	admin.GET("", h.paymentHandler.ListPayments)
	admin.GET("/:id", h.paymentHandler.GetPayment)
	admin.DELETE("/:id", h.paymentHandler.DeletePayment)
	admin.GET("/:id/statement.xlsx", h.paymentHandler.Statement)

	groups.Driver.GET("/payments", h.paymentHandler.ListOwnPayments)
}
