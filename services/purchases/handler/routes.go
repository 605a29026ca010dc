package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/server"
	"github.com/piresc/freightdesk/services/purchases/handler/http"
)

var paths = map[models.PurchaseKind]string{
	models.KindFuel:   "/abastecimentos",
	models.KindSupply: "/outros-insumos",
}

// Handler wires the purchase HTTP handlers onto the role groups
type Handler struct {
	purchaseHandler *http.PurchaseHandler
}

// NewHandler creates the purchase route handler
func NewHandler(purchaseHandler *http.PurchaseHandler) *Handler {
	return &Handler{purchaseHandler: purchaseHandler}
}

// RegisterRoutes registers the abastecimento and outros insumos routes
func (h *Handler) RegisterRoutes(groups *server.RouteGroups) {
	for kind, path := range paths {
		h.registerAdmin(groups.Admin.Group(path), kind)

		groups.Driver.GET(path, h.purchaseHandler.ListOwn(kind))
		groups.Abastecedor.POST(path, h.purchaseHandler.CreateAsAbastecedor(kind))
		groups.Abastecedor.GET(path, h.purchaseHandler.ListSubmitted(kind))
	}
	groups.Driver.POST(paths[models.KindFuel], h.purchaseHandler.Submit(models.KindFuel))
}

func (h *Handler) registerAdmin(g *echo.Group, kind models.PurchaseKind) {
	g.POST("", h.purchaseHandler.Create(kind))
	g.GET("", h.purchaseHandler.List(kind))
	g.GET("/:id", h.purchaseHandler.Get(kind))
	g.PUT("/:id", h.purchaseHandler.Update(kind))
	g.DELETE("/:id", h.purchaseHandler.Delete(kind))
}
