package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/drivers/mocks"
)

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestDriverUC(t *testing.T) (*DriverUC, *mocks.MockDriverRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDriverRepo(ctrl)
	return NewDriverUC(mockRepo, &models.Config{}), mockRepo
}

func TestCreateDriver_Success(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)

	req := &models.DriverRequest{
		Name:          ptr(" João Silva "),
		CPF:           ptr("529.982.247-25"),
		Phone:         ptr("(11) 98765-4321"),
		Password:      ptr("segredo"),
		PricePerKmTon: ptr(dec("0.18")),
		Plates:        &models.Plates{"ABC1234", "BRA2E19"},
	}

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Driver) error {
			assert.Equal(t, "João Silva", d.Name)
			assert.Equal(t, "52998224725", d.CPF)
			assert.Equal(t, "5511987654321", d.Phone)
			assert.True(t, d.Active)
			assert.True(t, utils.CheckPassword(d.PasswordHash, "segredo"))
			d.ID = 10
			return nil
		})

	driver, err := uc.CreateDriver(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(10), driver.ID)
}

func TestCreateDriver_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  *models.DriverRequest
	}{
		{"missing name", &models.DriverRequest{CPF: ptr("52998224725"), Password: ptr("segredo")}},
		{"repeated digit cpf", &models.DriverRequest{Name: ptr("A"), CPF: ptr("11111111111"), Password: ptr("segredo")}},
		{"missing password", &models.DriverRequest{Name: ptr("A"), CPF: ptr("52998224725")}},
		{"short password", &models.DriverRequest{Name: ptr("A"), CPF: ptr("52998224725"), Password: ptr("123")}},
		{"bad plate", &models.DriverRequest{Name: ptr("A"), CPF: ptr("52998224725"), Password: ptr("segredo"), Plates: &models.Plates{"XYZ"}}},
		{"bad phone", &models.DriverRequest{Name: ptr("A"), CPF: ptr("52998224725"), Password: ptr("segredo"), Phone: ptr("12")}},
		{"negative rate", &models.DriverRequest{Name: ptr("A"), CPF: ptr("52998224725"), Password: ptr("segredo"), PricePerKmTon: ptr(dec("-1"))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newTestDriverUC(t)

			_, err := uc.CreateDriver(context.Background(), tc.req)

			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestUpdateDriver(t *testing.T) {
	t.Run("patches only given fields", func(t *testing.T) {
		uc, mockRepo := newTestDriverUC(t)

		stored := &models.Driver{ID: 3, Name: "Ana", CPF: "52998224725", PasswordHash: "old", Active: true}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(stored, nil)
		mockRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

		driver, err := uc.UpdateDriver(context.Background(), 3, &models.DriverRequest{
			Active:   ptr(false),
			ClientID: ptr(int64(8)),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana", driver.Name)
		assert.Equal(t, "old", driver.PasswordHash)
		assert.False(t, driver.Active)
		assert.Equal(t, int64(8), *driver.ClientID)
	})

	t.Run("missing driver", func(t *testing.T) {
		uc, mockRepo := newTestDriverUC(t)
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, models.NotFoundError("driver", 4))

		_, err := uc.UpdateDriver(context.Background(), 4, &models.DriverRequest{Name: ptr("B")})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestGetBalance(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.Driver{ID: 7}, nil)
	mockRepo.EXPECT().Balance(gomock.Any(), int64(7)).Return(&models.DriverBalance{
		DriverID:      7,
		FreightsTotal: dec("5000"),
		FuelTotal:     dec("1200.50"),
		SuppliesTotal: dec("99.50"),
		PaidTotal:     dec("3000"),
	}, nil)

	balance, err := uc.GetBalance(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, dec("3700").Equal(balance.AmountOwed), balance.AmountOwed.String())
	assert.True(t, dec("3000").Equal(balance.PaidTotal))
}

func TestGetBalance_UnknownDriver(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)
	mockRepo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, models.NotFoundError("driver", 9))

	_, err := uc.GetBalance(context.Background(), 9)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetProfile(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Driver{ID: 2, Name: "Rui"}, nil)
	mockRepo.EXPECT().Balance(gomock.Any(), int64(2)).Return(&models.DriverBalance{
		DriverID:      2,
		FreightsTotal: dec("100"),
		FuelTotal:     dec("150"),
	}, nil)

	profile, err := uc.GetProfile(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Rui", profile.Driver.Name)
	assert.True(t, dec("-50").Equal(profile.Balance.AmountOwed))
}

func TestGetStats(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)

	mockRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Driver{ID: 2}, nil)
	mockRepo.EXPECT().Stats(gomock.Any(), int64(2)).Return(&models.DriverStats{DriverID: 2, TotalFreights: 4}, nil)

	stats, err := uc.GetStats(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalFreights)
}

func TestDeleteDriver(t *testing.T) {
	uc, mockRepo := newTestDriverUC(t)
	mockRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(errors.New("boom"))

	err := uc.DeleteDriver(context.Background(), 5)

	assert.EqualError(t, err, "failed to delete driver: boom")
}
