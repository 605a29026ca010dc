package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// CurrentUserID returns the authenticated account id set by the auth middleware
func CurrentUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(constants.ContextKeyUserID).(int64)
	if !ok || id <= 0 {
		return 0, models.ErrUnauthorized
	}
	return id, nil
}

// CurrentRole returns the authenticated role
func CurrentRole(c echo.Context) models.Role {
	role, _ := c.Get(constants.ContextKeyUserRole).(models.Role)
	return role
}

// ParamID parses a positive int64 path parameter
func ParamID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("invalid %s", name)
	}
	return id, nil
}

// QueryInt64 parses an optional int64 query parameter
func QueryInt64(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &v, nil
}

// QueryBool parses an optional boolean query parameter
func QueryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &v, nil
}

// QueryDate parses an optional date query parameter
func QueryDate(c echo.Context, name string) (*models.Date, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &d, nil
}

// ParseIDList accepts "1,2,3" or "[1,2,3]" as sent by multipart forms
func ParseIDList(raw string) ([]int64, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// BindAndValidate binds the request body into req and runs the registered
// validator. Malformed payloads come back as validation errors.
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return models.NewValidationError("Invalid request payload")
	}
	return c.Validate(req)
}

// IsMultipart reports whether the request body is a multipart form
func IsMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// OpenFormFile opens the uploaded file sent as name. A form without that
// file yields nil and no error; callers decide whether it is required.
func OpenFormFile(c echo.Context, name string) (multipart.File, error) {
	fh, err := c.FormFile(name)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewValidationError("invalid upload %s", name)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return f, nil
}

// FormString returns the trimmed form value, or nil when the field is
// missing or blank
func FormString(c echo.Context, name string) *string {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}

// FormInt64 parses an optional int64 form field
func FormInt64(c echo.Context, name string) (*int64, error) {
	raw := FormString(c, name)
	if raw == nil {
		return nil, nil
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &v, nil
}

// FormDecimal parses an optional decimal form field. Both "1234.5" and
// the Brazilian "1234,5" are accepted.
func FormDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := FormString(c, name)
	if raw == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(strings.Replace(*raw, ",", ".", 1))
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &v, nil
}

// FormDate parses an optional date form field
func FormDate(c echo.Context, name string) (*models.Date, error) {
	raw := FormString(c, name)
	if raw == nil {
		return nil, nil
	}
	d, err := models.ParseDate(*raw)
	if err != nil {
		return nil, models.NewValidationError("invalid %s", name)
	}
	return &d, nil
}
