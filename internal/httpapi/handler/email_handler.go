package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/middleware"
	"bookstore/internal/httpapi/service"
	"bookstore/internal/mail"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc service.EmailService
}

func NewEmailHandler(svc service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

func (h *EmailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Broadcast)
}

// Broadcast sends the staff mail to the selected accounts. A subject with
// header-breaking characters is rejected with the literal invalid-input
// message rather than sanitized.
func (h *EmailHandler) Broadcast(c *gin.Context) {
	senderID := middleware.UserID(c)

	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	// sending mail can be slower than a database roundtrip
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	err := h.svc.Broadcast(ctx, senderID, req.Recipients, req.Subject, req.Message)
	switch {
	case errors.Is(err, mail.ErrBadHeader):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"subject": "invalid input"}})
		return
	case errors.Is(err, service.ErrNoRecipients):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"recipients": dto.MsgInvalidValue}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
