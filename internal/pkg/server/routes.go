package server

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/middleware"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// RouteGroups are the role-scoped route groups every service registers on.
// Each protected group validates the bearer token and then the role claim.
type RouteGroups struct {
	Public      *echo.Group
	Admin       *echo.Group
	Driver      *echo.Group
	Abastecedor *echo.Group
	Cliente     *echo.Group
}

// NewRouteGroups builds the public and per-role groups on e
func NewRouteGroups(e *echo.Echo, cfg models.JWTConfig) *RouteGroups {
	auth := middleware.JWTAuthMiddleware(cfg)
	return &RouteGroups{
		Public:      e.Group(""),
		Admin:       e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin)),
		Driver:      e.Group("/driver", auth, middleware.RequireRole(models.RoleDriver)),
		Abastecedor: e.Group("/abastecedor", auth, middleware.RequireRole(models.RoleAbastecedor)),
		Cliente:     e.Group("/cliente", auth, middleware.RequireRole(models.RoleCliente)),
	}
}
