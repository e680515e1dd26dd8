package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookHandler struct {
	svc service.CatalogService
}

func NewBookHandler(svc service.CatalogService) *BookHandler {
	return &BookHandler{svc: svc}
}

// RegisterRoutes wires the public catalog endpoints; staff endpoints are
// registered separately under the worker middleware.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:book_id", h.Get)
}

// RegisterStaffRoutes wires catalog administration.
func (h *BookHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:book_id", h.Update)
	rg.DELETE("/:book_id", h.Delete)
}

// RegisterWorkerRoutes wires the paginated staff book list.
func (h *BookHandler) RegisterWorkerRoutes(rg *gin.RouterGroup) {
	rg.GET("/books", h.WorkerList)
}

// List serves the full public catalog.
func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.ListBooks(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BookListResponse{
		Data:  dto.FromBooksToResponses(books),
		Total: int64(len(books)),
	})
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.GetBook(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromBookToResponse(*book))
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book := req.ToModel()
	if err := h.svc.CreateBook(ctx, &book); err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBookToResponse(book))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book_id"})
		return
	}

	var req dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.FieldErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.GetBook(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	req.ApplyTo(book)
	if err := h.svc.UpdateBook(ctx, id, book); err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBookToResponse(*book))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// WorkerList serves the staff catalog page by page.
func (h *BookHandler) WorkerList(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, total, page, err := h.svc.WorkerPage(ctx, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.BookListResponse{
		Data:     dto.FromBooksToResponses(books),
		Total:    total,
		Page:     page,
		PageSize: service.WorkerPageSize,
	})
}

func (h *BookHandler) catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"language": dto.MsgInvalidValue}})
	case errors.Is(err, service.ErrInvalidGenre):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"genre": dto.MsgInvalidValue}})
	case errors.Is(err, service.ErrAuthorNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"author_id": dto.MsgInvalidValue}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
