package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/validation"
	"github.com/piresc/freightdesk/services/accounts/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateClient_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/admin/clients", `{"name":"Agro Sul","email":"fin@agrosul.com.br","document":"11222333000181"}`)
	mockUC.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
		Return(&models.Client{ID: 2, Name: "Agro Sul", PasswordHash: "secret-hash"}, nil)

	require.NoError(t, h.CreateClient(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestCreateClient_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewAccountHandler(mocks.NewMockAccountUC(ctrl))

	c, rec := newContext(http.MethodPost, "/admin/clients", `{"name":"Agro Sul","email":"fin@agrosul.com.br","document":"123"}`)

	require.NoError(t, h.CreateClient(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAdmin_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/admin/admins", `{"name":"Ops","email":"ops@example.com","password":"segredo"}`)
	mockUC.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(nil, models.ErrConflict)

	require.NoError(t, h.CreateAdmin(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateAbastecedor_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	c, rec := newContext(http.MethodPut, "/admin/abastecedores/3", `{"station":"Posto B"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	mockUC.EXPECT().UpdateAbastecedor(gomock.Any(), int64(3), gomock.Any()).
		Return(nil, models.NotFoundError("abastecedor", 3))

	require.NoError(t, h.UpdateAbastecedor(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/admin/admins", "")
	mockUC.EXPECT().ListAdmins(gomock.Any()).Return([]*models.Admin{{ID: 1}, {ID: 2}}, nil)

	require.NoError(t, h.ListAdmins(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)
}
