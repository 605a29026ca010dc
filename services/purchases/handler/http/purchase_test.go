package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/validation"
	"github.com/piresc/freightdesk/services/purchases/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newMultipartContext(t *testing.T, fields map[string]string, withReceipt bool) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withReceipt {
		fw, err := w.CreateFormFile(ReceiptField, "nota.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreate_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPurchaseUC(ctrl)
	h := NewPurchaseHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/admin/outros-insumos", `{"driver_id":4,"vendor":"Loja","quantity":2,"unit_price":"150"}`)
	mockUC.EXPECT().CreatePurchase(gomock.Any(), models.KindSupply, nil, gomock.Any(), nil).
		DoAndReturn(func(_ interface{}, _ models.PurchaseKind, _ *int64, req *models.PurchaseRequest, _ io.Reader) (*models.Purchase, error) {
			assert.Equal(t, "Loja", *req.Vendor)
			return &models.Purchase{ID: 1, Kind: models.KindSupply}, nil
		})

	require.NoError(t, h.Create(models.KindSupply)(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreate_InvalidPlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPurchaseHandler(mocks.NewMockPurchaseUC(ctrl))

	c, rec := newContext(http.MethodPost, "/admin/abastecimentos", `{"driver_id":4,"plate":"XYZ"}`)

	require.NoError(t, h.Create(models.KindFuel)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAsAbastecedor_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPurchaseUC(ctrl)
	h := NewPurchaseHandler(mockUC)

	c, rec := newMultipartContext(t, map[string]string{
		"driver_id":  "4",
		"vendor":     "Posto Graal",
		"quantity":   "300",
		"unit_price": "5,89",
		"plate":      "",
	}, true)
	c.Set(constants.ContextKeyUserID, int64(2))

	mockUC.EXPECT().CreatePurchase(gomock.Any(), models.KindFuel, gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ interface{}, _ models.PurchaseKind, abastecedorID *int64, req *models.PurchaseRequest, receipt io.Reader) (*models.Purchase, error) {
			assert.Equal(t, int64(2), *abastecedorID)
			assert.Equal(t, int64(4), *req.DriverID)
			assert.Equal(t, "5.89", req.UnitPrice.String())
			assert.Nil(t, req.Plate)
			data, err := io.ReadAll(receipt)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.4", string(data))
			return &models.Purchase{ID: 3}, nil
		})

	require.NoError(t, h.CreateAsAbastecedor(models.KindFuel)(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreate_MultipartBadNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPurchaseHandler(mocks.NewMockPurchaseUC(ctrl))

	c, rec := newMultipartContext(t, map[string]string{"driver_id": "4", "quantity": "muito"}, false)

	require.NoError(t, h.Create(models.KindFuel)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit_RequiresReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPurchaseUC(ctrl)
	h := NewPurchaseHandler(mockUC)

	c, rec := newMultipartContext(t, map[string]string{"date": "2024-04-02"}, false)
	c.Set(constants.ContextKeyUserID, int64(4))
	require.NoError(t, h.Submit(models.KindFuel)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newMultipartContext(t, map[string]string{"date": "2024-04-02"}, true)
	c.Set(constants.ContextKeyUserID, int64(4))
	mockUC.EXPECT().SubmitPurchase(gomock.Any(), models.KindFuel, int64(4), gomock.Any(), gomock.Any()).
		Return(&models.Purchase{ID: 8, Status: models.StatusPending}, nil)
	require.NoError(t, h.Submit(models.KindFuel)(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListSubmitted_ScopedToAbastecedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPurchaseUC(ctrl)
	h := NewPurchaseHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/abastecedor/abastecimentos?paid=false", "")
	c.Set(constants.ContextKeyUserID, int64(2))
	mockUC.EXPECT().ListPurchases(gomock.Any(), models.KindFuel, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.PurchaseKind, f models.PurchaseFilter) ([]*models.Purchase, error) {
			assert.Equal(t, int64(2), *f.AbastecedorID)
			assert.False(t, *f.Paid)
			return []*models.Purchase{}, nil
		})

	require.NoError(t, h.ListSubmitted(models.KindFuel)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_Settled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPurchaseUC(ctrl)
	h := NewPurchaseHandler(mockUC)

	c, rec := newContext(http.MethodPut, "/admin/abastecimentos/5", `{"vendor":"Posto"}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	mockUC.EXPECT().UpdatePurchase(gomock.Any(), models.KindFuel, int64(5), gomock.Any()).Return(nil, models.ErrConflict)

	require.NoError(t, h.Update(models.KindFuel)(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
