package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound/domain"
	"github.com/adipras/campusfound/services/lostfound/mocks"
)

func TestAdminLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	token := uuid.NewString()
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/login", `{"password": "changeme"}`)

	mockUC.EXPECT().
		AdminLogin(gomock.Any(), "changeme").
		Return(token, nil)

	// Act
	err := adminHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, token, response["token"])
}

func TestAdminLogin_EmptyPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/login", `{}`)

	// Act
	err := adminHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "password required", response["error"])
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/login", `{"password": "nope"}`)

	mockUC.EXPECT().
		AdminLogin(gomock.Any(), "nope").
		Return("", domain.ErrInvalidCredentials)

	// Act
	err := adminHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "invalid password", response["error"])
}

func TestAdminListUsers_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListUsers(gomock.Any()).
		Return([]*models.User{
			{Phone: "0811"},
			{Phone: "0822", Blocked: true},
		}, nil)

	// Act
	err := adminHandler.ListUsers(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])

	users := response["users"].([]interface{})
	assert.Len(t, users, 2)
	assert.Equal(t, true, users[1].(map[string]interface{})["blocked"])
}

func TestAdminBlockUser_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/block-user", `{"phone": "081234567890"}`)

	mockUC.EXPECT().
		BlockUser(gomock.Any(), "081234567890").
		Return(nil)

	// Act
	err := adminHandler.BlockUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminBlockUser_UnknownPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/block-user", `{"phone": "081234567890"}`)

	mockUC.EXPECT().
		BlockUser(gomock.Any(), "081234567890").
		Return(domain.ErrUserNotFound)

	// Act
	err := adminHandler.BlockUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminBlockUser_MissingPhone(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	adminHandler := NewAdminHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/block-user", `{}`)

	// Act
	err := adminHandler.BlockUser(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "phone required", response["error"])
}

func TestAdminAuthMiddleware_HeaderToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	token := uuid.NewString()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("x-admin-token", token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		AuthenticateAdmin(gomock.Any(), token).
		Return(true)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	// Act
	err := AdminAuthMiddleware(mockUC)(next)(c)

	// Assert
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestAdminAuthMiddleware_BodyToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)
	token := uuid.NewString()

	e := echo.New()
	c, _ := newJSONContext(e, http.MethodPost, "/api/admin/block-user",
		`{"adminToken": "`+token+`", "phone": "081234567890"}`)

	mockUC.EXPECT().
		AuthenticateAdmin(gomock.Any(), token).
		Return(true)

	// The body must survive the middleware's peek so the handler can bind.
	var seen models.BlockUserRequest
	next := func(c echo.Context) error {
		assert.NoError(t, c.Bind(&seen))
		return c.NoContent(http.StatusOK)
	}

	// Act
	err := AdminAuthMiddleware(mockUC)(next)(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "081234567890", seen.Phone)
}

func TestAdminAuthMiddleware_RejectsMissingToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLostFoundUC(ctrl)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		AuthenticateAdmin(gomock.Any(), "").
		Return(false)

	next := func(c echo.Context) error {
		t.Fatal("next handler should not run")
		return nil
	}

	// Act
	err := AdminAuthMiddleware(mockUC)(next)(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "admin auth required", response["error"])
}
