package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	jwtpkg "github.com/piresc/freightdesk/internal/pkg/jwt"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testJWT = models.JWTConfig{Secret: "middleware-test-secret", Expiration: 10, Issuer: "test"}

func newProtectedServer(roles ...models.Role) *echo.Echo {
	e := echo.New()
	g := e.Group("/admin", JWTAuthMiddleware(testJWT), RequireRole(roles...))
	g.GET("/whoami", func(c echo.Context) error {
		ctxID, _ := requestcontext.AccountID(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":     c.Get(constants.ContextKeyUserID),
			"role":   c.Get(constants.ContextKeyUserRole),
			"ctx_id": ctxID,
		})
	})
	return e
}

func doRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	e := newProtectedServer(models.RoleAdmin)

	t.Run("missing token", func(t *testing.T) {
		rec := doRequest(e, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doRequest(e, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		token, _, err := jwtpkg.GenerateToken(5, "Driver", models.RoleDriver, testJWT)
		require.NoError(t, err)
		rec := doRequest(e, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, _, err := jwtpkg.GenerateToken(1, "Admin", models.RoleAdmin, testJWT)
		require.NoError(t, err)
		rec := doRequest(e, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "admin", body["role"])
		assert.Equal(t, float64(1), body["ctx_id"])
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	h := RequestIDMiddleware()(func(c echo.Context) error {
		assert.Equal(t, c.Get(constants.ContextKeyRequestID), requestcontext.RequestID(c.Request().Context()))
		return c.String(http.StatusOK, c.Get(constants.ContextKeyRequestID).(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	h := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		panic("nil freight")
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/freights", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "nil freight", logs.All()[0].ContextMap()["panic_value"])
}
