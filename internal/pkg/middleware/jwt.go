package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	jwtpkg "github.com/piresc/freightdesk/internal/pkg/jwt"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/requestcontext"
	"github.com/piresc/freightdesk/internal/utils"
)

// JWTAuthMiddleware validates the bearer token and exposes the account id,
// role and name on the echo context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: constants.ContextKeyClaims,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, config.Secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(constants.ContextKeyClaims).(*jwtpkg.Claims)
			if !ok {
				return
			}
			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyUserRole, claims.Role)
			c.Set(constants.ContextKeyUserName, claims.Name)
			req := c.Request()
			c.SetRequest(req.WithContext(
				requestcontext.WithAccount(req.Context(), claims.UserID, string(claims.Role))))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}
			return utils.UnauthorizedResponse(c, "Invalid token")
		},
	})
}

// RequireRole rejects authenticated requests whose role is not in roles.
// It must run after JWTAuthMiddleware.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(constants.ContextKeyUserRole).(models.Role)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			if !allowed[role] {
				return utils.ForbiddenResponse(c, "Role not allowed for this resource")
			}
			return next(c)
		}
	}
}
