package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/middleware"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WalletHandler struct {
	svc service.WalletService
}

func NewWalletHandler(svc service.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.POST("/top-up", h.TopUp)
}

func (h *WalletHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	wallet, err := h.svc.Balance(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{UserID: wallet.UserID, Balance: wallet.Balance})
}

// TopUp adds funds. The bounds are surfaced as per-field messages on the
// amount field, matching the top-up form's error strings.
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID := middleware.UserID(c)

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	wallet, err := h.svc.TopUp(ctx, userID, *req.Amount)
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"amount": dto.MsgInvalidValue}})
		return
	case errors.Is(err, models.ErrAmountTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"amount": dto.MsgTooLarge}})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "wallet not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{UserID: wallet.UserID, Balance: wallet.Balance})
}
