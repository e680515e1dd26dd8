package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	svc service.CatalogService
}

func NewAuthorHandler(svc service.CatalogService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req dto.CreateAuthorDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	author, fieldErrs := req.ToModel()
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.CreateAuthor(ctx, &author); err != nil {
		if errors.Is(err, models.ErrDeathBeforeBirth) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"date_of_death": dto.MsgInvalidDate}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromAuthorToResponse(author))
}

// List serves the author dropdown for the search form.
func (h *AuthorHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	authors, err := h.svc.ListAuthors(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, dto.FromAuthorToResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}
