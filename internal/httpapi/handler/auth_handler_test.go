package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID, firstName, lastName, email string) error {
	args := m.Called(ctx, userID, firstName, lastName, email)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func authRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(svc, 15*time.Minute)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)
	router.POST("/password", asUser("user-1", models.RoleClient), handler.ChangePassword)
	return router
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	reqBody := dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	}
	user := &models.User{ID: "user-123", Username: "testuser", Email: "test@example.com"}
	mockAuthService.On("Register", mock.Anything, reqBody).Return(user, nil)

	w := postJSON(router, "/register", reqBody)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "user-123", response["user_id"])
	assert.Equal(t, "testuser", response["username"])
	mockAuthService.AssertExpectations(t)
}

func TestRegisterHandler_UsernameInUse(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	mockAuthService.On("Register", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, service.ErrNameInUse)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
		Email:    "test@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user with this name already exists", fieldErrors(t, w)["username"])
}

func TestRegisterHandler_ShortUsername(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "ab",
		Password: "password123",
		Email:    "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, fieldErrors(t, w)["username"])
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_ShortPassword(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Password: "short",
		Email:    "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, fieldErrors(t, w)["password"])
}

func TestRegisterHandler_BadEmail(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.MsgInvalidEmail, fieldErrors(t, w)["email"])
}

func TestLoginHandler_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	user := &models.User{ID: "user-1", Username: "testuser", Role: models.RoleClient}
	mockAuthService.On("Login", mock.Anything, "testuser", "password123").
		Return("access-token", "refresh-token", user, nil)

	w := postJSON(router, "/login", dto.LoginRequest{Username: "testuser", Password: "password123"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	mockAuthService.On("Login", mock.Anything, "testuser", "wrong").
		Return("", "", nil, service.ErrInvalidCredentials)

	w := postJSON(router, "/login", dto.LoginRequest{Username: "testuser", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "wrong username or password", response["error"])
}

func TestChangePasswordHandler_WrongOld(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := authRouter(mockAuthService)

	mockAuthService.On("ChangePassword", mock.Anything, "user-1", "bad-old", "newpassword1").
		Return(service.ErrWrongPassword)

	w := postJSON(router, "/password", dto.ChangePasswordRequest{
		OldPassword: "bad-old",
		NewPassword: "newpassword1",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "wrong old password", fieldErrors(t, w)["old_password"])
}
