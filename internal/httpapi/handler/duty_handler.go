package handler

import (
	"context"
	"net/http"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type DutyHandler struct {
	svc service.DutyService
}

func NewDutyHandler(svc service.DutyService) *DutyHandler {
	return &DutyHandler{svc: svc}
}

func (h *DutyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Report)
}

// Report serves the staff duty list: active loans grouped by user.
func (h *DutyHandler) Report(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	report, err := h.svc.Report(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DutyResponse{Users: report})
}
