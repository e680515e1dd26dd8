package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/middleware"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/repository"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MsgInsufficientFunds is the literal reason attached to the top-up
// redirect on a rejected purchase.
const MsgInsufficientFunds = "Insufficient funds"

// TopUpPath is where a rejected buyer is redirected.
const TopUpPath = "/api/wallet/top-up"

type TradeHandler struct {
	svc      service.TradeService
	userRepo repository.UserRepository
}

func NewTradeHandler(svc service.TradeService, userRepo repository.UserRepository) *TradeHandler {
	return &TradeHandler{svc: svc, userRepo: userRepo}
}

func (h *TradeHandler) RegisterRoutes(books, rents, buys, profile *gin.RouterGroup) {
	books.POST("/:book_id/buy", h.Buy)
	books.POST("/:book_id/rent", h.Rent)
	rents.POST("/:rent_id/return", h.Return)
	rents.DELETE("/:rent_id", h.DeleteRent)
	buys.DELETE("/:buy_id", h.DeleteBuy)
	profile.GET("", h.Profile)
}

// Buy runs the purchase. On insufficient funds nothing is mutated and the
// client is redirected to the top-up form with the literal reason string.
func (h *TradeHandler) Buy(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	buy, err := h.svc.Purchase(ctx, userID, bookID)
	switch {
	case errors.Is(err, models.ErrInsufficientFunds):
		c.Header("Location", TopUpPath)
		c.JSON(http.StatusSeeOther, gin.H{"redirect": TopUpPath, "reason": MsgInsufficientFunds})
		return
	case errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no copies left in stock"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromBuyToResponse(*buy))
}

func (h *TradeHandler) Rent(c *gin.Context) {
	userID := middleware.UserID(c)
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	rent, err := h.svc.RentBook(ctx, userID, bookID)
	switch {
	case errors.Is(err, models.ErrOutOfStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no copies left in stock"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromRentToResponse(*rent, time.Now()))
}

func (h *TradeHandler) Return(c *gin.Context) {
	userID := middleware.UserID(c)
	rentID, err := strconv.ParseInt(c.Param("rent_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rent_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.ReturnBook(ctx, userID, rentID)
	if !h.tradeMutationOK(c, err, "rent not found") {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "book returned"})
}

func (h *TradeHandler) DeleteBuy(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)
	buyID, err := strconv.ParseInt(c.Param("buy_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid buy_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.DeleteBuy(ctx, userID, role, buyID)
	if !h.tradeMutationOK(c, err, "buy not found") {
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TradeHandler) DeleteRent(c *gin.Context) {
	userID := middleware.UserID(c)
	role := middleware.Role(c)
	rentID, err := strconv.ParseInt(c.Param("rent_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rent_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = h.svc.DeleteRent(ctx, userID, role, rentID)
	if !h.tradeMutationOK(c, err, "rent not found") {
		return
	}

	c.Status(http.StatusNoContent)
}

// Profile returns the caller's purchases, loans and balance.
func (h *TradeHandler) Profile(c *gin.Context) {
	userID := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	buys, rents, wallet, err := h.svc.Profile(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.FindByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now()
	resp := dto.ProfileResponse{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Balance:   wallet.Balance,
		Buys:      make([]dto.BuyResponse, 0, len(buys)),
		Rents:     make([]dto.RentResponse, 0, len(rents)),
	}
	for _, b := range buys {
		resp.Buys = append(resp.Buys, dto.FromBuyToResponse(b))
	}
	for _, r := range rents {
		resp.Rents = append(resp.Rents, dto.FromRentToResponse(r, today))
	}

	c.JSON(http.StatusOK, resp)
}

// tradeMutationOK maps the shared error cases for return/delete
// operations and reports whether the caller may proceed.
func (h *TradeHandler) tradeMutationOK(c *gin.Context, err error, notFoundMsg string) bool {
	switch {
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "record belongs to another user"})
		return false
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return false
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	return true
}
