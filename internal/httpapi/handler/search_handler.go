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
)

// Search status lines rendered to the user. Exactly one applies per
// request and they never overlap.
const (
	MsgPickABook    = "Pick a book"
	MsgClarifyQuery = "Clarify your query"
	MsgNoBooksFound = "No books found"
)

type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.Search)
}

// Search reads the filter families off the query string. Presence of the
// title parameter matters: "?title=" is a submitted-but-empty query and
// gets the clarification message, while no title parameter at all falls
// through to the other filters.
func (h *SearchHandler) Search(c *gin.Context) {
	var query dto.SearchQuery

	if title, ok := c.GetQuery("title"); ok {
		query.Title = &title
	}
	if authorStr, ok := c.GetQuery("author_id"); ok {
		authorID, err := strconv.ParseInt(authorStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"author_id": dto.MsgInvalidValue}})
			return
		}
		query.AuthorID = &authorID
	}
	query.Genre = c.Query("genre")
	if languages, ok := c.GetQueryArray("language"); ok {
		query.Languages = languages
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.Search(ctx, query)
	switch {
	case errors.Is(err, service.ErrPickABook):
		c.JSON(http.StatusOK, dto.SearchResponse{Message: MsgPickABook, Books: []dto.BookResponse{}})
		return
	case errors.Is(err, service.ErrClarifyQuery):
		c.JSON(http.StatusOK, dto.SearchResponse{Message: MsgClarifyQuery, Books: []dto.BookResponse{}})
		return
	case errors.Is(err, service.ErrNoBooksFound):
		c.JSON(http.StatusOK, dto.SearchResponse{Message: MsgNoBooksFound, Books: []dto.BookResponse{}})
		return
	case errors.Is(err, service.ErrInvalidGenre):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"genre": dto.MsgInvalidValue}})
		return
	case errors.Is(err, service.ErrInvalidLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"language": dto.MsgInvalidValue}})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Books: dto.FromBooksToResponses(books)})
}
