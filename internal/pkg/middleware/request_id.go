package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/requestcontext"
)

// RequestIDMiddleware propagates X-Request-ID or generates one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(constants.ContextKeyRequestID, requestID)
			req := c.Request()
			c.SetRequest(req.WithContext(requestcontext.WithRequestID(req.Context(), requestID)))

			return next(c)
		}
	}
}
