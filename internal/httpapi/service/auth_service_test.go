package service

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/middleware/auth"
	"bookstore/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testAuthService(userRepo *MockUserRepository, tokenRepo *MockRefreshTokenRepository) AuthService {
	cfg := &config.Config{
		JWTSecret:       "test-secret-test-secret-test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	return NewAuthService(userRepo, tokenRepo, cfg)
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("CreateWithWallet", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register(context.Background(), dto.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotEmpty(t, user.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByUsername", mock.Anything, "taken").Return(&models.User{Username: "taken"}, nil)

	user, err := authService.Register(context.Background(), dto.RegisterRequest{
		Username: "taken",
		Password: "password123",
		Email:    "other@example.com",
	})

	assert.ErrorIs(t, err, ErrNameInUse)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "CreateWithWallet", mock.Anything, mock.Anything)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByUsername", mock.Anything, "newuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	_, err := authService.Register(context.Background(), dto.RegisterRequest{
		Username: "newuser",
		Password: "password123",
		Email:    "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "testuser", Password: hashed, Role: models.RoleClient}

	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	mockTokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	access, refresh, got, err := authService.Login(context.Background(), "testuser", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "user-1", got.ID)
	mockTokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	hashed, _ := auth.HashPassword("password123")
	user := &models.User{ID: "user-1", Username: "testuser", Password: hashed}
	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)

	_, _, _, err := authService.Login(context.Background(), "testuser", "wrongpass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := authService.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_Roundtrip(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	hashed, _ := auth.HashPassword("password123")
	user := &models.User{ID: "user-1", Username: "testuser", Password: hashed, Role: models.RoleWorker}
	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(user, nil)
	mockTokenRepo.On("Create", mock.Anything).Return(nil)

	access, _, _, err := authService.Login(context.Background(), "testuser", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(access)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, models.RoleWorker, claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	authService := testAuthService(new(MockUserRepository), new(MockRefreshTokenRepository))

	claims, err := authService.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestRefreshAccessToken_Revoked(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockTokenRepo.On("FindByToken", "revoked-token").Return(&models.RefreshToken{
		ID:        "tok-1",
		UserID:    "user-1",
		Token:     "revoked-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}, nil)

	_, err := authService.RefreshAccessToken(context.Background(), "revoked-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockTokenRepo.On("FindByToken", "old-token").Return(&models.RefreshToken{
		ID:        "tok-1",
		UserID:    "user-1",
		Token:     "old-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	mockTokenRepo.On("Delete", "tok-1").Return(nil)

	_, err := authService.RefreshAccessToken(context.Background(), "old-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
	mockTokenRepo.AssertCalled(t, "Delete", "tok-1")
}

func TestChangePassword_WrongOld(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	hashed, _ := auth.HashPassword("current")
	mockUserRepo.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Password: hashed}, nil)

	err := authService.ChangePassword(context.Background(), "user-1", "not-current", "newpassword")

	assert.ErrorIs(t, err, ErrWrongPassword)
	mockUserRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_EmailTakenByOther(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{ID: "other"}, nil)

	err := authService.UpdateProfile(context.Background(), "user-1", "A", "B", "taken@example.com")

	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestUpdateProfile_KeepOwnEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockTokenRepo := new(MockRefreshTokenRepository)
	authService := testAuthService(mockUserRepo, mockTokenRepo)

	mockUserRepo.On("FindByEmail", mock.Anything, "mine@example.com").Return(&models.User{ID: "user-1"}, nil)
	mockUserRepo.On("UpdateProfile", mock.Anything, "user-1", "A", "B", "mine@example.com").Return(nil)

	err := authService.UpdateProfile(context.Background(), "user-1", "A", "B", "mine@example.com")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}
