package dto

import (
	"bookstore/internal/httpapi/models"
)

// CreateBookDTO used for POST /api/books
type CreateBookDTO struct {
	Title    string  `json:"title" binding:"required,max=100"`
	ImageURL *string `json:"image_url,omitempty"`
	Summary  *string `json:"summary,omitempty" binding:"omitempty,max=500"`
	AuthorID *int64  `json:"author_id,omitempty"`
	Language string  `json:"language" binding:"required"`
	Genre    string  `json:"genre" binding:"required"`
	Price    *int64  `json:"price" binding:"required,min=0,max=2147483647"`
	Count    *int64  `json:"count" binding:"required,min=0,max=2147483647"`
}

// UpdateBookDTO used for PUT /api/books/:book_id (partial updates allowed)
type UpdateBookDTO struct {
	Title    *string `json:"title,omitempty" binding:"omitempty,max=100"`
	ImageURL *string `json:"image_url,omitempty"`
	Summary  *string `json:"summary,omitempty" binding:"omitempty,max=500"`
	AuthorID *int64  `json:"author_id,omitempty"`
	Language *string `json:"language,omitempty"`
	Genre    *string `json:"genre,omitempty"`
	Price    *int64  `json:"price,omitempty" binding:"omitempty,min=0,max=2147483647"`
	Count    *int64  `json:"count,omitempty" binding:"omitempty,min=0,max=2147483647"`
}

// BookResponse DTO for responses
type BookResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"image_url,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	AuthorID *int64  `json:"author_id,omitempty"`
	Author   string  `json:"author,omitempty"`
	Language string  `json:"language"`
	Genre    string  `json:"genre"`
	Price    int64   `json:"price"`
	Count    int64   `json:"count"`
}

// BookListResponse wraps a page of books.
type BookListResponse struct {
	Data     []BookResponse `json:"data"`
	Total    int64          `json:"total"`
	Page     int            `json:"page,omitempty"`
	PageSize int            `json:"page_size,omitempty"`
}

// Converters

func (d CreateBookDTO) ToModel() models.Book {
	b := models.Book{
		Title:    d.Title,
		ImageURL: d.ImageURL,
		Summary:  d.Summary,
		AuthorID: d.AuthorID,
		Language: models.Language(d.Language),
		Genre:    models.Genre(d.Genre),
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.Count != nil {
		b.Count = *d.Count
	}
	return b
}

func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.ImageURL != nil {
		b.ImageURL = d.ImageURL
	}
	if d.Summary != nil {
		b.Summary = d.Summary
	}
	if d.AuthorID != nil {
		b.AuthorID = d.AuthorID
	}
	if d.Language != nil {
		b.Language = models.Language(*d.Language)
	}
	if d.Genre != nil {
		b.Genre = models.Genre(*d.Genre)
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.Count != nil {
		b.Count = *d.Count
	}
}

func FromBookToResponse(b models.Book) BookResponse {
	resp := BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		ImageURL: b.ImageURL,
		Summary:  b.Summary,
		AuthorID: b.AuthorID,
		Language: string(b.Language),
		Genre:    string(b.Genre),
		Price:    b.Price,
		Count:    b.Count,
	}
	if b.Author != nil {
		resp.Author = b.Author.DisplayName()
	}
	return resp
}

func FromBooksToResponses(books []models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, FromBookToResponse(b))
	}
	return out
}
