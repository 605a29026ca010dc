package utils

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserID(t *testing.T) {
	c, _ := newTestContext()
	_, err := CurrentUserID(c)
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	c.Set(constants.ContextKeyUserID, int64(42))
	c.Set(constants.ContextKeyUserRole, models.RoleDriver)
	id, err := CurrentUserID(c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, models.RoleDriver, CurrentRole(c))
}

func TestQueryHelpers(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?driver_id=3&paid=false&from=01/02/2024&bad=x", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	driverID, err := QueryInt64(c, "driver_id")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *driverID)

	paid, err := QueryBool(c, "paid")
	require.NoError(t, err)
	assert.False(t, *paid)

	from, err := QueryDate(c, "from")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", from.String())

	missing, err := QueryInt64(c, "client_id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryBool(c, "bad")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestParamID(t *testing.T) {
	c, _ := newTestContext()
	c.SetParamNames("id")
	c.SetParamValues("15")
	id, err := ParamID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	c.SetParamValues("-1")
	_, err = ParamID(c, "id")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("[1, 2,3]")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, err = ParseIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseIDList("1,a")
	assert.Error(t, err)
}

func TestFormHelpers(t *testing.T) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("driver_id", "7"))
	require.NoError(t, w.WriteField("quantity", "120,5"))
	require.NoError(t, w.WriteField("date", "15/03/2024"))
	require.NoError(t, w.WriteField("vendor", "  Posto Graal "))
	fw, err := w.CreateFormFile("file", "nota.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("receipt"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.True(t, IsMultipart(c))

	driverID, err := FormInt64(c, "driver_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *driverID)

	qty, err := FormDecimal(c, "quantity")
	require.NoError(t, err)
	assert.Equal(t, "120.5", qty.String())

	date, err := FormDate(c, "date")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", date.String())

	assert.Equal(t, "Posto Graal", *FormString(c, "vendor"))
	assert.Nil(t, FormString(c, "notes"))

	f, err := OpenFormFile(c, "file")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "receipt", string(data))

	missing, err := OpenFormFile(c, "proof")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var dst struct {
		Name string `json:"name"`
	}
	err := BindAndValidate(c, &dst)
	assert.ErrorIs(t, err, models.ErrValidation)
}
