package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/piresc/freightdesk/internal/pkg/jwt"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/pkg/otpcache"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/auth/mocks"
)

type authMocks struct {
	repo   *mocks.MockAuthRepo
	otp    *mocks.MockOTPStore
	sender *mocks.MockCodeSender
}

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
		OTP: models.OTPConfig{TTL: 10 * time.Minute, Length: 6},
	}
}

func newTestAuthUC(t *testing.T) (*AuthUC, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		repo:   mocks.NewMockAuthRepo(ctrl),
		otp:    mocks.NewMockOTPStore(ctrl),
		sender: mocks.NewMockCodeSender(ctrl),
	}
	return NewAuthUC(m.repo, m.otp, m.sender, testConfig()), m
}

func mustHash(t *testing.T, password string) string {
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_Success(t *testing.T) {
	uc, m := newTestAuthUC(t)

	m.repo.EXPECT().
		FindByLogin(gomock.Any(), models.RoleDriver, "52998224725").
		Return(&models.Account{ID: 4, Name: "João", PasswordHash: mustHash(t, "segredo"), Active: true}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Role:     models.RoleDriver,
		Login:    "529.982.247-25",
		Password: "segredo",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.UserID)
	assert.Equal(t, models.RoleDriver, resp.Role)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, int64(4), claims.UserID)
	assert.Equal(t, models.RoleDriver, claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestLogin_Failures(t *testing.T) {
	hash := mustHash(t, "segredo")

	testCases := []struct {
		name    string
		req     *models.LoginRequest
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name:    "unknown role",
			req:     &models.LoginRequest{Role: "root", Login: "a", Password: "b"},
			setup:   func(m authMocks) {},
			wantErr: models.ErrValidation,
		},
		{
			name: "unknown account",
			req:  &models.LoginRequest{Role: models.RoleAdmin, Login: "x@example.com", Password: "segredo"},
			setup: func(m authMocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), models.RoleAdmin, "x@example.com").
					Return(nil, models.ErrNotFound)
			},
			wantErr: models.ErrUnauthorized,
		},
		{
			name: "wrong password",
			req:  &models.LoginRequest{Role: models.RoleAdmin, Login: "x@example.com", Password: "nope"},
			setup: func(m authMocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), models.RoleAdmin, "x@example.com").
					Return(&models.Account{ID: 1, PasswordHash: hash, Active: true}, nil)
			},
			wantErr: models.ErrUnauthorized,
		},
		{
			name: "inactive account",
			req:  &models.LoginRequest{Role: models.RoleCliente, Login: "c@example.com", Password: "segredo"},
			setup: func(m authMocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), models.RoleCliente, "c@example.com").
					Return(&models.Account{ID: 2, PasswordHash: hash, Active: false}, nil)
			},
			wantErr: models.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newTestAuthUC(t)
			tc.setup(m)

			resp, err := uc.Login(context.Background(), tc.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRequestPasswordReset_SendsCode(t *testing.T) {
	uc, m := newTestAuthUC(t)

	var stored string
	m.repo.EXPECT().FindByPhone(gomock.Any(), models.RoleDriver, "5511987654321").
		Return(&models.Account{ID: 4}, nil)
	m.otp.EXPECT().Put(gomock.Any(), models.RoleDriver, "5511987654321", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Role, _ string, code string) error {
			stored = code
			return nil
		})
	m.sender.EXPECT().Send(gomock.Any(), "5511987654321", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) error {
			assert.Contains(t, message, stored)
			assert.Contains(t, message, "10 minutos")
			return nil
		})

	err := uc.RequestPasswordReset(context.Background(), &models.PasswordResetRequest{
		Role:  models.RoleDriver,
		Phone: "(11) 98765-4321",
	})

	require.NoError(t, err)
	assert.Len(t, stored, 6)
}

func TestRequestPasswordReset_UnknownPhoneIsSilent(t *testing.T) {
	uc, m := newTestAuthUC(t)

	m.repo.EXPECT().FindByPhone(gomock.Any(), models.RoleAdmin, "5511987654321").
		Return(nil, models.ErrNotFound)

	err := uc.RequestPasswordReset(context.Background(), &models.PasswordResetRequest{
		Role:  models.RoleAdmin,
		Phone: "11987654321",
	})

	assert.NoError(t, err)
}

func TestRequestPasswordReset_SendFailure(t *testing.T) {
	uc, m := newTestAuthUC(t)

	m.repo.EXPECT().FindByPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.Account{ID: 4}, nil)
	m.otp.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("gateway down"))

	err := uc.RequestPasswordReset(context.Background(), &models.PasswordResetRequest{
		Role:  models.RoleDriver,
		Phone: "11987654321",
	})

	assert.EqualError(t, err, "failed to send reset code: gateway down")
}

func TestConfirmPasswordReset(t *testing.T) {
	t.Run("valid code updates the password", func(t *testing.T) {
		uc, m := newTestAuthUC(t)

		m.otp.EXPECT().Consume(gomock.Any(), models.RoleDriver, "5511987654321", "123456").Return(true, nil)
		m.repo.EXPECT().FindByPhone(gomock.Any(), models.RoleDriver, "5511987654321").
			Return(&models.Account{ID: 4}, nil)
		m.repo.EXPECT().UpdatePassword(gomock.Any(), models.RoleDriver, int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.Role, _ int64, hash string) error {
				assert.True(t, utils.CheckPassword(hash, "nova-senha"))
				return nil
			})

		err := uc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
			Role:        models.RoleDriver,
			Phone:       "11987654321",
			Code:        "123456",
			NewPassword: "nova-senha",
		})

		assert.NoError(t, err)
	})

	t.Run("wrong code is a validation error", func(t *testing.T) {
		uc, m := newTestAuthUC(t)
		m.otp.EXPECT().Consume(gomock.Any(), models.RoleDriver, "5511987654321", "000000").Return(false, nil)

		err := uc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
			Role:        models.RoleDriver,
			Phone:       "11987654321",
			Code:        "000000",
			NewPassword: "nova-senha",
		})

		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestPasswordResetRoundTrip_MemoryStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuthRepo(ctrl)
	sender := mocks.NewMockCodeSender(ctrl)

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	store := otpcache.NewMemoryStore(10*time.Minute, func() time.Time { return now })
	uc := NewAuthUC(repo, store, sender, testConfig())

	var code string
	repo.EXPECT().FindByPhone(gomock.Any(), models.RoleCliente, "5511987654321").
		Return(&models.Account{ID: 9}, nil).Times(2)
	sender.EXPECT().Send(gomock.Any(), "5511987654321", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) error {
			code = message[len("Seu código de redefinição de senha é ") : len("Seu código de redefinição de senha é ")+6]
			return nil
		})
	repo.EXPECT().UpdatePassword(gomock.Any(), models.RoleCliente, int64(9), gomock.Any()).Return(nil)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), &models.PasswordResetRequest{
		Role: models.RoleCliente, Phone: "11987654321",
	}))
	require.NoError(t, uc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
		Role: models.RoleCliente, Phone: "11987654321", Code: code, NewPassword: "nova-senha",
	}))

	err := uc.ConfirmPasswordReset(context.Background(), &models.PasswordResetConfirm{
		Role: models.RoleCliente, Phone: "11987654321", Code: code, NewPassword: "outra-senha",
	})
	assert.ErrorIs(t, err, models.ErrValidation, "codes are single use")
}
