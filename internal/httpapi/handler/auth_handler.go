package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/middleware"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService service.AuthService
	expiresIn   int64
}

func NewAuthHandler(authService service.AuthService, accessTokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		expiresIn:   int64(accessTokenTTL.Seconds()),
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMw gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
	rg.POST("/logout", authMw, h.Logout)
	rg.POST("/password", authMw, h.ChangePassword)
	rg.PUT("/profile", authMw, h.UpdateProfile)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.authService.Register(ctx, req)
	switch {
	case errors.Is(err, service.ErrNameInUse):
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"username": "user with this name already exists"}})
		return
	case errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "user with this address already exists"}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	accessToken, refreshToken, user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong username or password"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		ExpiresIn:    h.expiresIn,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	accessToken, err := h.authService.RefreshAccessToken(ctx, req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.expiresIn,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// always succeed so tokens cannot be fished by probing this endpoint
	_ = h.authService.RevokeToken(ctx, req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.authService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"old_password": "wrong old password"}})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.authService.UpdateProfile(ctx, userID, req.FirstName, req.LastName, req.Email)
	switch {
	case errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"email": "user with this address already exists"}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
