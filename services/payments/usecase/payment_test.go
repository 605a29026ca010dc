package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/piresc/freightdesk/internal/pkg/constants"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	storagemocks "github.com/piresc/freightdesk/internal/pkg/storage/mocks"
	"github.com/piresc/freightdesk/services/payments/mocks"
)

type paymentDeps struct {
	repo  *mocks.MockPaymentRepo
	gw    *mocks.MockPaymentGW
	store *storagemocks.MockFileStore
}

func newTestPaymentUC(t *testing.T) (*PaymentUC, paymentDeps) {
	ctrl := gomock.NewController(t)
	deps := paymentDeps{
		repo:  mocks.NewMockPaymentRepo(ctrl),
		gw:    mocks.NewMockPaymentGW(ctrl),
		store: storagemocks.NewMockFileStore(ctrl),
	}
	return NewPaymentUC(deps.repo, deps.gw, deps.store, &models.Config{}), deps
}

func TestCreatePayment(t *testing.T) {
	uc, deps := newTestPaymentUC(t)
	proof := strings.NewReader("%PDF")
	total := decimal.RequireFromString("1234.567")

	deps.store.EXPECT().Save(gomock.Any(), constants.FolderPaymentProofs, proof).Return("/uploads/pagamentos/p.pdf", nil)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), false).
		DoAndReturn(func(_ context.Context, p *models.Payment, _ bool) error {
			assert.Equal(t, pq.Int64Array{10, 11}, p.FreightIDs)
			assert.Equal(t, pq.Int64Array{}, p.AbastecimentoIDs)
			assert.Equal(t, pq.Int64Array{3}, p.OutrosInsumoIDs)
			assert.Equal(t, "1234.57", p.TotalValue.StringFixed(2))
			assert.Equal(t, "/uploads/pagamentos/p.pdf", p.ProofURL)
			p.ID = 5
			return nil
		})
	deps.gw.EXPECT().PublishPaymentCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.PaymentEvent) error {
			assert.Equal(t, int64(5), e.PaymentID)
			assert.Equal(t, 3, e.Rows)
			return nil
		})

	p, err := uc.CreatePayment(context.Background(), &models.PaymentRequest{
		DriverID:        1,
		DateRange:       " 01/03 a 15/03 ",
		TotalValue:      &total,
		FreightIDs:      []int64{10, 11, 10},
		OutrosInsumoIDs: []int64{3},
	}, proof)

	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, "01/03 a 15/03", p.DateRange)
}

func TestCreatePayment_DerivesTotalWhenOmitted(t *testing.T) {
	uc, deps := newTestPaymentUC(t)

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), true).Return(nil)
	deps.gw.EXPECT().PublishPaymentCreated(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	_, err := uc.CreatePayment(context.Background(), &models.PaymentRequest{
		DriverID:   1,
		DateRange:  "março",
		FreightIDs: []int64{7},
	}, nil)

	assert.NoError(t, err)
}

func TestCreatePayment_LogsSettledRows(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.New(core)})
	defer logger.SetGlobalLogger(nil)

	uc, deps := newTestPaymentUC(t)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), true).Return(nil)
	deps.gw.EXPECT().PublishPaymentCreated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CreatePayment(context.Background(), &models.PaymentRequest{
		DriverID:         1,
		DateRange:        "abril",
		FreightIDs:       []int64{7, 8},
		AbastecimentoIDs: []int64{2},
	}, nil)
	require.NoError(t, err)

	entries := logs.FilterMessage("Payment created").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, []interface{}{int64(7), int64(8)}, fields["freight_ids"])
	assert.Equal(t, []interface{}{int64(2)}, fields["abastecimento_ids"])
}

func TestCreatePayment_Validation(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	tests := []struct {
		name string
		req  *models.PaymentRequest
	}{
		{name: "no driver", req: &models.PaymentRequest{DateRange: "x", FreightIDs: []int64{1}}},
		{name: "no date range", req: &models.PaymentRequest{DriverID: 1, FreightIDs: []int64{1}}},
		{name: "no rows", req: &models.PaymentRequest{DriverID: 1, DateRange: "x"}},
		{name: "negative total", req: &models.PaymentRequest{DriverID: 1, DateRange: "x", FreightIDs: []int64{1}, TotalValue: &negative}},
		{name: "invalid id", req: &models.PaymentRequest{DriverID: 1, DateRange: "x", AbastecimentoIDs: []int64{0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestPaymentUC(t)

			_, err := uc.CreatePayment(context.Background(), tt.req, nil)

			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreatePayment_RepoFailureDiscardsProof(t *testing.T) {
	uc, deps := newTestPaymentUC(t)
	proof := strings.NewReader("%PDF")

	deps.store.EXPECT().Save(gomock.Any(), constants.FolderPaymentProofs, proof).Return("/uploads/pagamentos/p.pdf", nil)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any(), true).
		Return(models.NewValidationError("freight 10 is already paid"))
	deps.store.EXPECT().Delete(gomock.Any(), "/uploads/pagamentos/p.pdf").Return(nil)

	_, err := uc.CreatePayment(context.Background(), &models.PaymentRequest{
		DriverID:   1,
		DateRange:  "semana",
		FreightIDs: []int64{10},
	}, proof)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDeletePayment(t *testing.T) {
	uc, deps := newTestPaymentUC(t)

	deps.repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(&models.Payment{
		ID:         5,
		DriverID:   1,
		ProofURL:   "/uploads/pagamentos/p.pdf",
		FreightIDs: pq.Int64Array{10, 11},
	}, nil)
	deps.store.EXPECT().Delete(gomock.Any(), "/uploads/pagamentos/p.pdf").Return(errors.New("gone"))
	deps.gw.EXPECT().PublishPaymentDeleted(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, uc.DeletePayment(context.Background(), 5))
}

func TestDeletePayment_NotFound(t *testing.T) {
	uc, deps := newTestPaymentUC(t)

	deps.repo.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil, models.NotFoundError("payment", 6))

	assert.ErrorIs(t, uc.DeletePayment(context.Background(), 6), models.ErrNotFound)
}

func TestStatement(t *testing.T) {
	uc, deps := newTestPaymentUC(t)
	payment := &models.Payment{
		ID:         5,
		DriverID:   1,
		DriverName: "João Silva",
		DriverCPF:  "52998224725",
		DateRange:  "01/03 a 15/03",
		TotalValue: decimal.RequireFromString("1200"),
	}
	day := models.NewDate(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))

	deps.repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(payment, nil)
	deps.repo.EXPECT().Lines(gomock.Any(), payment).Return([]*models.SettlementLine{
		{Kind: "freight", ID: 10, Date: day, Description: "Rio Verde - Santos", TotalValue: decimal.RequireFromString("1500")},
		{Kind: "abastecimento", ID: 3, Date: day, Description: "Posto Graal - diesel", TotalValue: decimal.RequireFromString("300")},
	}, nil)

	data, err := uc.Statement(context.Background(), 5)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(statementSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", name)

	kind, err := f.GetCellValue(statementSheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "Abastecimento", kind)

	deduction, err := f.GetCellValue(statementSheet, "E9")
	require.NoError(t, err)
	assert.Equal(t, "-300", deduction)

	net, err := f.GetCellValue(statementSheet, "E13")
	require.NoError(t, err)
	assert.Equal(t, "1200", net)
}

func TestStatement_NotFound(t *testing.T) {
	uc, deps := newTestPaymentUC(t)

	deps.repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, models.NotFoundError("payment", 9))

	_, err := uc.Statement(context.Background(), 9)

	assert.ErrorIs(t, err, models.ErrNotFound)
}
