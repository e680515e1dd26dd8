package service

import (
	"context"
	"errors"
	"log/slog"

	"bookstore/internal/cache"
	"bookstore/internal/httpapi/models"
	"bookstore/internal/httpapi/repository"
)

var (
	ErrInvalidLanguage = errors.New("unknown language")
	ErrInvalidGenre    = errors.New("unknown genre")
	ErrAuthorNotFound  = errors.New("author not found")
)

// WorkerPageSize is the staff book list page size.
const WorkerPageSize = 10

type CatalogService interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, b *models.Book) error
	UpdateBook(ctx context.Context, id int64, b *models.Book) error
	DeleteBook(ctx context.Context, id int64) error
	WorkerPage(ctx context.Context, page int) ([]models.Book, int64, int, error)
	CreateAuthor(ctx context.Context, a *models.Author) error
	ListAuthors(ctx context.Context) ([]models.Author, error)
}

type catalogService struct {
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
	cache      *cache.BookCache
	logger     *slog.Logger
}

func NewCatalogService(
	bookRepo repository.BookRepository,
	authorRepo repository.AuthorRepository,
	bookCache *cache.BookCache,
	logger *slog.Logger,
) CatalogService {
	return &catalogService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		cache:      bookCache,
		logger:     logger,
	}
}

// ListBooks serves the public catalog, cache first.
func (s *catalogService) ListBooks(ctx context.Context) ([]models.Book, error) {
	if books, ok := s.cache.Get(ctx); ok {
		return books, nil
	}
	books, err := s.bookRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, books); err != nil {
		s.logger.Warn("catalog cache set failed", "error", err)
	}
	return books, nil
}

func (s *catalogService) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *catalogService) CreateBook(ctx context.Context, b *models.Book) error {
	if err := s.validateBook(ctx, b); err != nil {
		return err
	}
	if err := s.bookRepo.Create(ctx, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) UpdateBook(ctx context.Context, id int64, b *models.Book) error {
	if err := s.validateBook(ctx, b); err != nil {
		return err
	}
	if _, err := s.bookRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.bookRepo.Update(ctx, id, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// WorkerPage returns one staff page of the catalog. Out-of-range pages
// are clamped into range instead of erroring, so a stale pagination link
// still renders the nearest valid page.
func (s *catalogService) WorkerPage(ctx context.Context, page int) ([]models.Book, int64, int, error) {
	if page < 1 {
		page = 1
	}
	books, total, err := s.bookRepo.GetPage(ctx, page, WorkerPageSize)
	if err != nil {
		return nil, 0, 0, err
	}
	lastPage := int((total + WorkerPageSize - 1) / WorkerPageSize)
	if lastPage == 0 {
		lastPage = 1
	}
	if len(books) == 0 && page > lastPage {
		page = lastPage
		books, total, err = s.bookRepo.GetPage(ctx, page, WorkerPageSize)
		if err != nil {
			return nil, 0, 0, err
		}
	}
	return books, total, page, nil
}

func (s *catalogService) CreateAuthor(ctx context.Context, a *models.Author) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return s.authorRepo.Create(ctx, a)
}

func (s *catalogService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return s.authorRepo.List(ctx)
}

func (s *catalogService) validateBook(ctx context.Context, b *models.Book) error {
	if !b.Language.Valid() {
		return ErrInvalidLanguage
	}
	if !b.Genre.Valid() {
		return ErrInvalidGenre
	}
	if b.AuthorID != nil {
		if _, err := s.authorRepo.GetByID(ctx, *b.AuthorID); err != nil {
			return ErrAuthorNotFound
		}
	}
	return nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", "error", err)
	}
}
