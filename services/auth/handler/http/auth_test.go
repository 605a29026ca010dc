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
	"github.com/piresc/freightdesk/services/auth/mocks"
)

func newContext(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newContext("/auth/login", `{"role":"admin","login":"ops@example.com","password":"segredo"}`)

	mockAuthUC.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Role: models.RoleAdmin, Login: "ops@example.com", Password: "segredo"}).
		Return(&models.AuthResponse{Token: "tok", UserID: 1, Role: models.RoleAdmin}, nil)

	// Act
	err := authHandler.Login(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "tok", data["token"])
}

func TestLogin_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	c, rec := newContext("/auth/login", `{"role":"admin"}`)

	require.NoError(t, authHandler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newContext("/auth/login", `{"role":"driver","login":"52998224725","password":"x"}`)
	mockAuthUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, models.ErrUnauthorized)

	require.NoError(t, authHandler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newContext("/auth/password-reset/request", `{"role":"driver","phone":"11987654321"}`)
	mockAuthUC.EXPECT().RequestPasswordReset(gomock.Any(), &models.PasswordResetRequest{
		Role:  models.RoleDriver,
		Phone: "11987654321",
	}).Return(nil)

	require.NoError(t, authHandler.RequestPasswordReset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestPasswordReset_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	authHandler := NewAuthHandler(mocks.NewMockAuthUC(ctrl))

	c, rec := newContext("/auth/password-reset/request", `{"role":"driver","phone":"123"}`)

	require.NoError(t, authHandler.RequestPasswordReset(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmPasswordReset_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newContext("/auth/password-reset/confirm",
		`{"role":"driver","phone":"11987654321","code":"000000","new_password":"nova-senha"}`)
	mockAuthUC.EXPECT().ConfirmPasswordReset(gomock.Any(), gomock.Any()).
		Return(models.NewValidationError("invalid or expired code"))

	require.NoError(t, authHandler.ConfirmPasswordReset(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid or expired code", response["error"])
}
