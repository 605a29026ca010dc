package http

import (
	"bytes"
	"context"
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
	"github.com/piresc/freightdesk/services/payments/mocks"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newMultipartContext(t *testing.T, fields map[string]string, withProof bool) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withProof {
		fw, err := w.CreateFormFile(ProofField, "pix.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("\x89PNG"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/payments", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreatePayment_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/admin/payments",
		`{"driver_id":1,"date_range":"01/03 a 15/03","freight_ids":[10,11],"total_value":"1500.50"}`)
	mockUC.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, req *models.PaymentRequest, _ io.Reader) (*models.Payment, error) {
			assert.Equal(t, []int64{10, 11}, req.FreightIDs)
			assert.Equal(t, "1500.5", req.TotalValue.String())
			return &models.Payment{ID: 3, DriverID: 1}, nil
		})

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePayment_MissingDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockPaymentUC(ctrl))

	c, rec := newContext(http.MethodPost, "/admin/payments", `{"driver_id":1,"freight_ids":[10]}`)

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayment_MultipartWithProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newMultipartContext(t, map[string]string{
		"driver_id":         "2",
		"date_range":        "março",
		"abastecimento_ids": "[4, 5]",
		"outros_insumo_ids": "6",
	}, true)
	mockUC.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, req *models.PaymentRequest, proof io.Reader) (*models.Payment, error) {
			assert.Equal(t, int64(2), req.DriverID)
			assert.Nil(t, req.TotalValue)
			assert.Empty(t, req.FreightIDs)
			assert.Equal(t, []int64{4, 5}, req.AbastecimentoIDs)
			assert.Equal(t, []int64{6}, req.OutrosInsumoIDs)
			data, err := io.ReadAll(proof)
			require.NoError(t, err)
			assert.Equal(t, "\x89PNG", string(data))
			return &models.Payment{ID: 8}, nil
		})

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePayment_MultipartBadIDList(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewPaymentHandler(mocks.NewMockPaymentUC(ctrl))

	c, rec := newMultipartContext(t, map[string]string{
		"driver_id":   "2",
		"date_range":  "março",
		"freight_ids": "1,abc",
	}, false)

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "freight_ids")
}

func TestCreatePayment_AlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/admin/payments", `{"driver_id":1,"date_range":"x","freight_ids":[10]}`)
	mockUC.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), nil).
		Return(nil, models.NewValidationError("freight 10 is already paid"))

	require.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already paid")
}

func TestDeletePayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodDelete, "/admin/payments/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	mockUC.EXPECT().DeletePayment(gomock.Any(), int64(4)).Return(models.NotFoundError("payment", 4))

	require.NoError(t, h.DeletePayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOwnPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/driver/payments?driver_id=99", "")
	c.Set(constants.ContextKeyUserID, int64(7))
	driverID := int64(7)
	mockUC.EXPECT().ListPayments(gomock.Any(), &driverID).Return([]*models.Payment{{ID: 1, DriverID: 7}}, nil)

	require.NoError(t, h.ListOwnPayments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListPayments_All(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/admin/payments", "")
	mockUC.EXPECT().ListPayments(gomock.Any(), nil).Return([]*models.Payment{}, nil)

	require.NoError(t, h.ListPayments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewPaymentHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/admin/payments/5/statement.xlsx", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	mockUC.EXPECT().Statement(gomock.Any(), int64(5)).Return([]byte("PK"), nil)

	require.NoError(t, h.Statement(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "pagamento-5.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}
