package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Freight created", map[string]interface{}{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Freight created", response["message"])
	assert.Equal(t, float64(7), response["data"].(map[string]interface{})["id"])
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name    string
		call    func(c echo.Context) error
		code    int
		message string
	}{
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "km is required") }, http.StatusBadRequest, "km is required"},
		{"unauthorized default", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden default", func(c echo.Context) error { return ForbiddenResponse(c, "") }, http.StatusForbidden, "Forbidden"},
		{"not found default", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict default", func(c echo.Context) error { return ConflictResponse(c, "") }, http.StatusConflict, "Resource already exists"},
		{"internal default", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.code, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.code, response.Code)
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation message is exposed", fmt.Errorf("create freight: %w", models.NewValidationError("date is required")), http.StatusBadRequest, "date is required"},
		{"not found", models.NotFoundError("freight", 9), http.StatusNotFound, "freight 9: resource not found"},
		{"unauthorized", models.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", fmt.Errorf("freight of another driver: %w", models.ErrForbidden), http.StatusForbidden, "Forbidden"},
		{"conflict", fmt.Errorf("email taken: %w", models.ErrConflict), http.StatusConflict, "email taken: resource already exists"},
		{"anything else collapses to 500", errors.New("connection reset by peer"), http.StatusInternalServerError, "Failed to list freights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, HandleError(c, tt.err, "Failed to list freights"))
			assert.Equal(t, tt.code, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.message, response.Error)
		})
	}
}
