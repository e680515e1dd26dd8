package service

import (
	"context"
	"errors"

	"bookstore/internal/httpapi/dto"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/repository"
)

// The three mutually exclusive search outcome states. A handler maps each
// to its own message; none of them is an internal failure.
var (
	// ErrPickABook: no criteria were submitted at all.
	ErrPickABook = errors.New("pick a book")
	// ErrClarifyQuery: a title search was submitted with an empty query.
	ErrClarifyQuery = errors.New("clarify your query")
	// ErrNoBooksFound: valid criteria matched nothing.
	ErrNoBooksFound = errors.New("no books found")
)

type SearchService interface {
	Search(ctx context.Context, query dto.SearchQuery) ([]models.Book, error)
}

type searchService struct {
	bookRepo repository.BookRepository
}

func NewSearchService(bookRepo repository.BookRepository) SearchService {
	return &searchService{bookRepo: bookRepo}
}

// Search applies exactly one filter family, in the order the search form
// offers them: title, then author/genre, then languages. An empty result
// from any family is ErrNoBooksFound; an absent form is ErrPickABook.
func (s *searchService) Search(ctx context.Context, query dto.SearchQuery) ([]models.Book, error) {
	switch {
	case query.Title != nil:
		if *query.Title == "" {
			return nil, ErrClarifyQuery
		}
		return s.finish(s.bookRepo.SearchByTitle(ctx, *query.Title))

	case query.AuthorID != nil || query.Genre != "":
		if query.Genre != "" && !models.Genre(query.Genre).Valid() {
			return nil, ErrInvalidGenre
		}
		return s.finish(s.bookRepo.SearchByAuthorGenre(ctx, query.AuthorID, models.Genre(query.Genre)))

	case len(query.Languages) > 0:
		languages := make([]models.Language, 0, len(query.Languages))
		for _, l := range query.Languages {
			lang := models.Language(l)
			if !lang.Valid() {
				return nil, ErrInvalidLanguage
			}
			languages = append(languages, lang)
		}
		return s.finish(s.bookRepo.SearchByLanguages(ctx, languages))

	default:
		return nil, ErrPickABook
	}
}

func (s *searchService) finish(books []models.Book, err error) ([]models.Book, error) {
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooksFound
	}
	return books, nil
}
